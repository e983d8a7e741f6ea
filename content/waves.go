package content

import (
	"time"
)

// Wave describes one spawn wave: how many enemies trickle in, how fast, and
// how tough they are. After the last defined wave the table loops with the
// scale of the final entry.
type Wave struct {
	Name     string
	Count    int
	Interval time.Duration // delay between single spawns within the wave
	Rest     time.Duration // pause before the next wave
	EnemyHP  int
	Speed    float64 // enemy max speed, cells per second
	Glyph    rune
	Score    int
}

// Waves is the built-in wave table.
var Waves = []Wave{
	{Name: "drifters", Count: 6, Interval: 900 * time.Millisecond, Rest: 3 * time.Second, EnemyHP: 1, Speed: 6, Glyph: 'o', Score: 10},
	{Name: "stalkers", Count: 10, Interval: 700 * time.Millisecond, Rest: 3 * time.Second, EnemyHP: 2, Speed: 8, Glyph: 'x', Score: 15},
	{Name: "swarm", Count: 18, Interval: 400 * time.Millisecond, Rest: 4 * time.Second, EnemyHP: 2, Speed: 10, Glyph: '*', Score: 20},
	{Name: "bruisers", Count: 8, Interval: 1100 * time.Millisecond, Rest: 4 * time.Second, EnemyHP: 5, Speed: 7, Glyph: '@', Score: 40},
	{Name: "deluge", Count: 26, Interval: 300 * time.Millisecond, Rest: 5 * time.Second, EnemyHP: 3, Speed: 11, Glyph: '%', Score: 30},
}

// WaveAt returns the wave definition for a zero-based wave number, looping
// the table past its end.
func WaveAt(number int) Wave {
	if number < 0 {
		number = 0
	}
	return Waves[number%len(Waves)]
}
