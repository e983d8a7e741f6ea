package content

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Session identifies one game run. The ID stamps log lines and status
// dumps; the seed makes every random stream of the run reproducible.
type Session struct {
	ID   uuid.UUID
	Seed uint64
}

// NewSession creates a session. A zero seed picks a random one; a fixed
// seed replays the exact same wave composition.
func NewSession(seed uint64) *Session {
	if seed == 0 {
		seed = rand.Uint64()
		if seed == 0 {
			seed = 1
		}
	}
	return &Session{
		ID:   uuid.New(),
		Seed: seed,
	}
}

// StreamSeed derives a named random stream from the session seed. Each
// consumer (wave spawning, drops) hashes its own name so streams stay
// independent: drawing more numbers in one never shifts another.
func (s *Session) StreamSeed(name string) uint64 {
	d := xxhash.New()
	d.WriteString(name)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(s.Seed >> (8 * i))
	}
	d.Write(buf[:])
	return d.Sum64()
}

// StreamRand returns a seeded generator for a named stream.
func (s *Session) StreamRand(name string) *rand.Rand {
	return rand.New(rand.NewSource(int64(s.StreamSeed(name))))
}
