package components

// Sprite is the data a renderer needs to draw an entity. The runtime never
// decodes assets; Image is an opaque key for the host.
type Sprite struct {
	Image string
	// Color is a "#rrggbb" fallback fill when no image is bound.
	Color string
	// Layer orders entities within the renderer's entity pass. Lower
	// layers draw first, so sign markers sit below the player.
	Layer int
	FlipX bool
}
