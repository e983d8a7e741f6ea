package component

// Pickup is a collectible drop worth Value score when the player touches it.
type Pickup struct {
	Value int
}
