package component

// Position is an entity's location in arena cells. Stored as floats so
// sub-cell motion integrates cleanly; the renderer rounds at draw time.
type Position struct {
	X, Y float64
}
