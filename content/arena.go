package content

// Arena is the playfield size in cells. Positions are continuous; the
// renderer truncates to cells at draw time.
type Arena struct {
	Width  float64
	Height float64
}
