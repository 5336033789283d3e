package admission

import (
	"context"
	"errors"
	"testing"

	"github.com/counselkit/counsel/model"
	amemory "github.com/counselkit/counsel/service/dao/allocation/memory"
	"github.com/counselkit/counsel/service/strategy/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStrategy always errors; used to verify error propagation.
type failingStrategy struct{}

func (f *failingStrategy) Name() string { return "failing" }

func (f *failingStrategy) Allocate(_ context.Context, _ int) (string, error) {
	return "", errors.New("strategy failure")
}

func TestService_Allocate(t *testing.T) {
	ctx := context.Background()
	srv := New(amemory.New())
	applicant := model.NewApplicant("Ada Lovelace", 42)

	college, err := srv.Allocate(ctx, fixed.NewRoundTwo(), applicant)
	require.NoError(t, err)
	assert.Equal(t, fixed.RoundTwoResponse, college)

	college, err = srv.Allocate(ctx, fixed.NewRoundThree(), applicant)
	require.NoError(t, err)
	assert.Equal(t, fixed.RoundThreeResponse, college)

	history, err := srv.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, fixed.RoundTwoName, history[0].Strategy)
	assert.Equal(t, fixed.RoundThreeName, history[1].Strategy)
	for _, record := range history {
		assert.Equal(t, *applicant, record.Applicant)
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())
	}
}

func TestService_AllocateError(t *testing.T) {
	ctx := context.Background()
	srv := New(amemory.New())

	college, err := srv.Allocate(ctx, &failingStrategy{}, model.NewApplicant("Ada", 1))
	assert.Empty(t, college)
	require.Error(t, err)

	// a failed allocation leaves no history entry
	history, err := srv.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestService_NilDAO(t *testing.T) {
	ctx := context.Background()
	srv := New(nil)

	college, err := srv.Allocate(ctx, fixed.NewRoundTwo(), model.NewApplicant("Ada", 1))
	require.NoError(t, err)
	assert.Equal(t, fixed.RoundTwoResponse, college)

	history, err := srv.History(ctx)
	require.NoError(t, err)
	assert.Nil(t, history)
}
