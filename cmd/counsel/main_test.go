package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/counselkit/counsel"
	"github.com/counselkit/counsel/service/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func testConfig(t *testing.T, dataset string) *counsel.Config {
	t.Helper()
	dir := t.TempDir()
	datasetURL := writeFile(t, dir, "colleges.txt", dataset)
	indirectionURL := writeFile(t, dir, "data.txt", datasetURL+"\n")
	cfg := counsel.DefaultConfig()
	cfg.IndirectionURL = indirectionURL
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, "100-200:Tech U\n201-300:State College\n")
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader("Ada Lovelace\n150\n"), out)
	require.NoError(t, err)

	assert.Equal(t, "Enter your name: Enter your rank: "+
		"Result: Tech U\n"+
		"Result: not eligible for round two\n"+
		"Result: not eligible for round three\n"+
		"Total instances of RankIntervalStrategy: 1\n", out.String())
}

func TestRun_NoAllocation(t *testing.T) {
	cfg := testConfig(t, "100-200:Tech U\n")
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader("Ada\n50\n"), out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Result: No college allocated for your rank.\n")
}

func TestRun_InvalidRank(t *testing.T) {
	cfg := testConfig(t, "100-200:Tech U\n")
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader("Ada\nabc\n"), out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrInvalidRank))
	// no allocation output once input fails
	assert.NotContains(t, out.String(), "Result:")
}

func TestRun_MissingIndirection(t *testing.T) {
	cfg := counsel.DefaultConfig()
	cfg.IndirectionURL = filepath.Join(t.TempDir(), "absent.txt")
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader(""), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")
	assert.Empty(t, out.String())
}

func TestRun_MissingDataset(t *testing.T) {
	dir := t.TempDir()
	indirectionURL := writeFile(t, dir, "data.txt", filepath.Join(dir, "absent.txt")+"\n")
	cfg := counsel.DefaultConfig()
	cfg.IndirectionURL = indirectionURL
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader(""), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")
	// the dataset check happens before any prompt
	assert.Empty(t, out.String())
}

func TestRun_MalformedDataset(t *testing.T) {
	cfg := testConfig(t, "abc:College\n")
	out := &bytes.Buffer{}

	err := run(context.Background(), cfg, strings.NewReader("Ada\n1\n"), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dataset format")
	assert.NotContains(t, out.String(), "Result:")
}
