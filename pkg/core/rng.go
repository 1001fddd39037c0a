package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Scatter returns the positions of an area that pass a density roll, in the
// same column-then-row order the grid scans cells. Density is clamped to [0, 1].
func (r *RNG) Scatter(size Size, density float64) []Pos {
	if density <= 0 || size.W <= 0 || size.H <= 0 {
		return nil
	}
	if density > 1 {
		density = 1
	}
	out := make([]Pos, 0, int(float64(size.Area())*density)+1)
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			if r.r.Float64() < density {
				out = append(out, Pos{X: x, Y: y})
			}
		}
	}
	return out
}
