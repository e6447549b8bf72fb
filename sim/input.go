package sim

// Input is the per-tick input snapshot consumed by behaviors. The host
// fills it from whatever device layer it has; the runtime only reads it.
type Input struct {
	// Held directional state.
	Left, Right, Up, Down bool
	// InteractPressed is edge-triggered: true only on the tick the
	// interact key went down.
	InteractPressed bool
}
