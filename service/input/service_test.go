package input

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ReadApplicant(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedName string
		expectedRank int
	}{
		{
			name:         "name with embedded spaces",
			input:        "Ada Lovelace\n42\n",
			expectedName: "Ada Lovelace",
			expectedRank: 42,
		},
		{
			name:         "leading whitespace before the name is skipped",
			input:        "  \n\n  Grace Hopper\n7\n",
			expectedName: "Grace Hopper",
			expectedRank: 7,
		},
		{
			name:         "rank may be padded with whitespace",
			input:        "Alan\n   150\n",
			expectedName: "Alan",
			expectedRank: 150,
		},
		{
			name:         "negative rank",
			input:        "Kurt\n-3\n",
			expectedName: "Kurt",
			expectedRank: -3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			srv := NewWithIO(strings.NewReader(tc.input), out)
			applicant, err := srv.ReadApplicant(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, applicant.Name)
			assert.Equal(t, tc.expectedRank, applicant.Rank)
			assert.Equal(t, namePrompt+rankPrompt, out.String())
		})
	}
}

func TestService_ReadApplicantInvalidRank(t *testing.T) {
	out := &bytes.Buffer{}
	srv := NewWithIO(strings.NewReader("Ada\nabc\n"), out)
	applicant, err := srv.ReadApplicant(context.Background())
	assert.Nil(t, applicant)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRank))
}

func TestService_ReadApplicantEmptyInput(t *testing.T) {
	srv := NewWithIO(strings.NewReader(""), &bytes.Buffer{})
	applicant, err := srv.ReadApplicant(context.Background())
	assert.Nil(t, applicant)
	assert.Error(t, err)
}
