// internal/event/types.go
package event

const (
	TurnEnded        EventType = "TurnEnded"        // Active tank finished its shot
	ProjectileImpact EventType = "ProjectileImpact" // Shell hit terrain or a tank
	TankDestroyed    EventType = "TankDestroyed"    // A tank dropped to 0 HP
	GlitchTriggered  EventType = "GlitchTriggered"  // A glitch effect was applied
	GlitchReverted   EventType = "GlitchReverted"   // The active glitch was undone
	GameReset        EventType = "GameReset"
)

// ImpactData is the payload of ProjectileImpact.
type ImpactData struct {
	X, Y      float64
	HitTank   int // index of the tank that was hit directly, -1 for terrain
	Destroyed bool
}
