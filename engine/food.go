package engine

import "math/rand"

// maxFoodTries bounds the rejection sampling loop. Beyond this the
// board is dense enough that scanning the free cells directly is
// cheaper than more sampling.
const maxFoodTries = 1000

// PlaceFood picks a uniformly random free cell for the next food.
// ok is false when the snake occupies the whole grid and no placement
// exists; the caller treats that as a won game.
func PlaceFood(rng *rand.Rand, snake []Position) (pos Position, ok bool) {
	if len(snake) >= GridSize*GridSize {
		return Position{}, false
	}

	occupied := make(map[Position]struct{}, len(snake))
	for _, seg := range snake {
		occupied[seg] = struct{}{}
	}

	for i := 0; i < maxFoodTries; i++ {
		p := Position{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		if _, hit := occupied[p]; !hit {
			return p, true
		}
	}

	// Dense endgame fallback: enumerate the free cells and pick one.
	var free []Position
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := Position{X: x, Y: y}
			if _, hit := occupied[p]; !hit {
				free = append(free, p)
			}
		}
	}
	return free[rng.Intn(len(free))], true
}
