// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	rollermock "github.com/KirkDiggler/void-dice/internal/pkg/roller/mock"
)

// ExpectSubRounds sets up ordered RollN expectations, one per sub-round,
// each returning the given faces
func ExpectSubRounds(mockRoller *rollermock.MockRoller, rounds ...[]int) {
	calls := make([]any, 0, len(rounds))
	for _, faces := range rounds {
		calls = append(calls, mockRoller.EXPECT().
			RollN(len(faces), dicepool.Sides).
			Return(faces, nil))
	}
	gomock.InOrder(calls...)
}

// ExpectRollFailure sets up a single failing RollN call for count dice
func ExpectRollFailure(mockRoller *rollermock.MockRoller, count int, err error) *gomock.Call {
	return mockRoller.EXPECT().
		RollN(count, dicepool.Sides).
		Return(nil, err)
}
