package parameter

// System priorities; lower runs earlier. Spacing leaves room to slot new
// systems between existing ones without renumbering.
const (
	PriorityPlayer    = 10
	PriorityHoming    = 20
	PriorityMovement  = 30
	PriorityWeapon    = 40
	PrioritySpawn     = 50
	PriorityCollision = 60
	PriorityDamage    = 70
	PriorityLifetime  = 80
	PriorityPickup    = 90
	PriorityScore     = 100
	PriorityAudio     = 110
	PriorityRender    = 200
)
