// Package config centralizes all tunable game parameters.
package config

import "time"

// Scoring
const (
	ScorePerKill = 100
)

// Combat
const (
	ProjectileDamage     = 10.0
	DamageShakeIntensity = 2.0
	DamageShakeDuration  = 0.15 // Seconds
)

// Celestial bounce
const (
	BounceRestitution    = 0.5
	BounceSeparation     = 1.0 // Extra push-out past contact, units
	BounceShakeIntensity = 3.0
	BounceShakeDuration  = 0.2 // Seconds
	BounceEffectCooldown = 0.2 // Seconds between bounce sound/shake
)

// Menu backdrop
const (
	MenuOrbitSpeed  = 0.1 // Radians per second
	MenuOrbitRadius = 600.0
	MenuOrbitHeight = 200.0
)

// Chase camera
const (
	CameraOffsetY    = 6.0
	CameraOffsetZ    = 22.0
	CameraLerpFactor = 0.001 // Fraction of the gap left after one second
	CameraLookAhead  = 50.0
	CameraFOV        = 1.2 // Vertical field of view, radians
)

// Minimap
const (
	MinimapRange = 2000.0 // World units from the player to the radar edge
)

// Leaderboard
const (
	TopScoresShown    = 10
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Game over
const (
	RestartDelaySeconds = 1.0 // Restart input is ignored this long after death
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxFrameDelta         = 100 * time.Millisecond // Longer stalls are simulated as one short frame
	MaxTermWidth          = 200                    // Columns; wider terminals get a border
	MaxTermHeight         = 60                     // Rows
	StarfieldSize         = 250                    // Backdrop stars
	BeltDrawDistance      = 1500.0                 // Rocks farther than this are not drawn
)
