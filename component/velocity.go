package component

// Velocity is linear motion in cells per second. MaxSpeed caps the
// magnitude after steering; zero means uncapped.
type Velocity struct {
	VX, VY   float64
	MaxSpeed float64
}
