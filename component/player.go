package component

// PlayerComponent marks the controllable character
type PlayerComponent struct {
	BaseSpeed float64
	Intent    float64 // Horizontal intent in [-1, 1] for the current tick
}
