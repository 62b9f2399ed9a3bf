// Package facebucket rolls a batch of six-sided dice and summarizes it with a
// counting sort instead of a comparison sort.
package facebucket

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	"github.com/KirkDiggler/void-dice/internal/errors"
)

// Summary is the bucketed view of one sub-roll
type Summary struct {
	// Values in ascending order
	Values []int

	// counts[f-1] is the number of dice showing face f
	counts [dicepool.Sides]int

	// atLeast[f-1] is the number of dice showing face f or higher
	atLeast [dicepool.Sides]int
}

// Count returns how many dice show face. Out-of-range faces count zero.
func (s *Summary) Count(face int) int {
	if face < dicepool.MinFace || face > dicepool.MaxFace {
		return 0
	}
	return s.counts[face-1]
}

// AtLeast returns how many dice show face or higher
func (s *Summary) AtLeast(face int) int {
	switch {
	case face <= dicepool.MinFace:
		return s.atLeast[0]
	case face > dicepool.MaxFace:
		return 0
	default:
		return s.atLeast[face-1]
	}
}

// Counts returns the per-face counts indexed by face-1
func (s *Summary) Counts() []int {
	out := make([]int, dicepool.Sides)
	copy(out, s.counts[:])
	return out
}

// Size returns the number of dice in the sub-roll
func (s *Summary) Size() int {
	return len(s.Values)
}

// Bucket rolls n dice with roller and summarizes them
func Bucket(n int, roller dice.Roller) (*Summary, error) {
	if n < 0 {
		return nil, errors.InvalidArgumentf("dice count must be non-negative, got %d", n).
			WithMeta("count", n)
	}
	if n == 0 {
		return Summarize(nil)
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	faces, err := roller.RollN(n, dicepool.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", n, dicepool.Sides)
	}
	if len(faces) != n {
		return nil, errors.Internalf("roller returned %d dice, expected %d", len(faces), n)
	}

	return Summarize(faces)
}

// Summarize buckets already rolled faces. Every face must be in 1..6.
func Summarize(faces []int) (*Summary, error) {
	s := &Summary{}

	for _, face := range faces {
		if face < dicepool.MinFace || face > dicepool.MaxFace {
			return nil, errors.OutOfRangef("face %d is outside %d..%d", face, dicepool.MinFace, dicepool.MaxFace).
				WithMeta("face", face)
		}
		s.counts[face-1]++
	}

	s.Values = make([]int, 0, len(faces))
	for i, n := range s.counts {
		for j := 0; j < n; j++ {
			s.Values = append(s.Values, i+1)
		}
	}

	running := 0
	for i := dicepool.Sides - 1; i >= 0; i-- {
		running += s.counts[i]
		s.atLeast[i] = running
	}

	return s, nil
}
