package constants

import "time"

// --- Enemy Spawning ---
const (
	// EnemyMax is the cap on simultaneously live targets
	EnemyMax = 11

	// RespawnInterval is the minimum time between two spawns
	RespawnInterval = 3 * time.Second

	// EnemySpawnRadius is the half-extent of the spawn cube on each axis
	EnemySpawnRadius = 15.0

	// EnemyPhaseRange is the upper bound of the random initial rotation phase
	EnemyPhaseRange = 360.0
)

// --- Projectiles ---
const (
	// BulletSpeed is the projectile speed in world units per second
	BulletSpeed = 30.0

	// BulletMuzzleOffset is how far in front of the camera a projectile appears
	BulletMuzzleOffset = 5.0

	// BulletModelScale is the uniform diagonal of the projectile model matrix
	BulletModelScale = 0.7

	// BulletTTL despawns projectiles older than this; zero keeps them forever
	BulletTTL = 5 * time.Second
)

// --- Collision ---
const (
	// ContactRadius is the exclusive hit distance between target and projectile
	ContactRadius = 3.0
)
