// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 700
	MaxDeltaTime = 0.06

	// Terrain
	TerrainBaseHeight = 500.0
	TerrainAmplitude  = 120.0
	TerrainStep       = 4 // heightmap sample spacing in pixels

	// Tanks
	TankCount      = 2
	TankMaxHP      = 100
	TankRadius     = 14.0
	BarrelLength   = 24.0
	AimSpeed       = 1.2  // radians per second
	PowerSpeed     = 60.0 // power units per second
	MinPower       = 20.0
	MaxPower       = 160.0
	DefaultGravity = 120.0 // projectile gravity, pixels/s^2

	// Projectiles
	ProjectileRadius   = 4.0
	TrailInterval      = 0.02 // seconds between trail particles
	DirectHitDamage    = 35
	SplashRadius       = 40.0
	SplashDamage       = 15
	ImpactSparkCount   = 12
	ImpactBurstCount   = 50
	DestroyedBurstSize = 90

	// Glitch events
	GlitchChance      = 0.3 // per-turn trigger probability
	GlitchBurstCount  = 30
	GlitchRepairHP    = 25
	GlitchDrainHP     = 15
	GlitchMoonFactor  = 0.3
	GlitchHeavyFactor = 2.0

	// HUD
	HUDMargin     = 16
	HPBarWidth    = 160.0
	HPBarHeight   = 10.0
	BannerOffsetY = 40
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	SkyTopColor     = color.RGBA{12, 12, 24, 255}
	TerrainColor    = color.RGBA{70, 100, 120, 255}
	TerrainEdge     = color.RGBA{120, 160, 180, 255}

	TankColors = []color.RGBA{
		{255, 80, 80, 255},  // player one
		{80, 160, 255, 255}, // player two
	}
	BarrelColor     = color.RGBA{230, 230, 230, 255}
	ProjectileColor = color.RGBA{255, 240, 200, 255}

	// Default particle palette (white for explosions, yellow for sparks,
	// cyan for trails).
	ParticleWhite  = color.RGBA{255, 255, 255, 255}
	ParticleYellow = color.RGBA{255, 220, 60, 255}
	ParticleCyan   = color.RGBA{80, 230, 230, 255}
	GlitchColor    = color.RGBA{180, 80, 255, 255}

	HPBarBackColor = color.RGBA{40, 40, 50, 255}
	HPBarFillColor = color.RGBA{80, 220, 100, 255}
	HPBarLowColor  = color.RGBA{220, 60, 60, 255}
	TextLightColor = color.RGBA{240, 240, 240, 255}
)
