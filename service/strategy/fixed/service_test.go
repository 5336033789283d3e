package fixed

import (
	"context"
	"testing"

	"github.com/counselkit/counsel/model/types"
	"github.com/stretchr/testify/assert"
)

func TestService_AllocateIgnoresRank(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		strategy types.Strategy
		expected string
	}{
		{name: RoundTwoName, strategy: NewRoundTwo(), expected: RoundTwoResponse},
		{name: RoundThreeName, strategy: NewRoundThree(), expected: RoundThreeResponse},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.strategy.Name())
			for _, rank := range []int{1, 999999} {
				actual, err := tc.strategy.Allocate(ctx, rank)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
