package asset

import (
	"errors"
	"testing"
)

func TestLibraryRegisterGet(t *testing.T) {
	lib := NewLibrary[string]()

	a, err := lib.Register("a", "alpha", nil)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	b, _ := lib.Register("b", "beta", nil)

	if a == b || !a.IsValid() || !b.IsValid() {
		t.Fatalf("Expected distinct valid handles, got %d and %d", a, b)
	}
	if v, err := lib.Get(b); err != nil || v != "beta" {
		t.Errorf("Get(b) = %q, %v", v, err)
	}
	if h, ok := lib.Lookup("a"); !ok || h != a {
		t.Errorf("Lookup(a) = %d, %v", h, ok)
	}
	if lib.Len() != 2 {
		t.Errorf("Len = %d, want 2", lib.Len())
	}
}

// TestLibraryUnknownHandle verifies invalid handles fail with a sentinel
func TestLibraryUnknownHandle(t *testing.T) {
	lib := NewLibrary[int]()
	lib.Register("one", 1, nil)

	for _, h := range []Handle{0, 2, 99} {
		if _, err := lib.Get(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("Get(%d) error = %v, want ErrUnknownHandle", h, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on unknown handle should panic")
		}
	}()
	lib.MustGet(5)
}

func TestLibraryDuplicateName(t *testing.T) {
	lib := NewLibrary[int]()
	lib.Register("x", 1, nil)

	if _, err := lib.Register("x", 2, nil); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

// TestLibraryCloseOrder verifies each asset is released once, newest first
func TestLibraryCloseOrder(t *testing.T) {
	lib := NewLibrary[string]()
	var released []string
	release := func(v string) error {
		released = append(released, v)
		return nil
	}

	lib.Register("first", "first", release)
	lib.Register("plain", "plain", nil)
	h, _ := lib.Register("last", "last", release)

	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}

	if len(released) != 2 || released[0] != "last" || released[1] != "first" {
		t.Errorf("Release order = %v, want [last first]", released)
	}
	if _, err := lib.Get(h); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close error = %v, want ErrClosed", err)
	}
	if _, err := lib.Register("late", "late", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Register after Close error = %v, want ErrClosed", err)
	}
}

func TestLibraryCloseJoinsErrors(t *testing.T) {
	lib := NewLibrary[int]()
	boom := errors.New("boom")
	lib.Register("a", 1, func(int) error { return boom })
	lib.Register("b", 2, func(int) error { return nil })

	if err := lib.Close(); !errors.Is(err, boom) {
		t.Errorf("Close error = %v, want wrapped boom", err)
	}
}

func TestLoadModels(t *testing.T) {
	models, err := LoadModels()
	if err != nil {
		t.Fatalf("LoadModels failed: %v", err)
	}
	defer models.Close()

	mesh := models.Meshes.MustGet(models.TargetMesh)
	if !mesh.Marker || mesh.Radius <= 0 {
		t.Errorf("Unexpected target mesh %+v", mesh)
	}
	bullet := models.Meshes.MustGet(models.ProjectileMesh)
	if bullet.Radius >= mesh.Radius {
		t.Errorf("Projectile radius %v should be smaller than target %v", bullet.Radius, mesh.Radius)
	}
	if err := models.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
