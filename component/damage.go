package component

// Damage is the contact damage an entity deals on collision. Score is the
// reward for destroying the dealer (enemies only).
type Damage struct {
	Amount int
	Score  int
}
