package engine

import "math/rand"

// Advance runs one simulation step: move the head, detect collisions,
// handle food and the speed ramp. Callers gate on Running(); Advance
// itself assumes the state is live.
//
// On a fatal collision the body is left untouched, only Over flips.
func (s *State) Advance(rng *rand.Rand) {
	s.Tick++

	next := s.Snake[0].Moved(s.Dir)

	if !next.InGrid() {
		s.Over = true
		return
	}

	// The body has not moved yet, so the tail cell still counts.
	for _, seg := range s.Snake {
		if seg == next {
			s.Over = true
			return
		}
	}

	s.Snake = append(s.Snake, Position{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = next

	if next != s.Food {
		s.Snake = s.Snake[:len(s.Snake)-1]
		return
	}

	s.Score += s.Rules.FoodScore
	if s.Interval > s.Rules.MinInterval {
		s.Interval -= s.Rules.SpeedStep
		if s.Interval < s.Rules.MinInterval {
			s.Interval = s.Rules.MinInterval
		}
	}

	food, ok := PlaceFood(rng, s.Snake)
	if !ok {
		s.Won = true
		return
	}
	s.Food = food
}

// ChangeDirection applies a requested heading unless it reverses the
// current one. Key presses and swipe gestures are normalized to this
// single entry point by the input layer.
func (s *State) ChangeDirection(d Direction) {
	if d == s.Dir.Opposite() {
		return
	}
	s.Dir = d
}

// TogglePause flips the pause flag and nothing else.
func (s *State) TogglePause() {
	s.Paused = !s.Paused
}
