package counsel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "data.txt", config.IndirectionURL)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	config := &Config{}
	require.Error(t, config.Validate())

	config.DatasetURL = "colleges.txt"
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	location := writeFile(t, dir, "counsel.yaml", `
datasetURL: colleges.txt
tracing:
  enabled: true
  outputFile: trace.json
`)

	config, err := LoadConfig(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, "colleges.txt", config.DatasetURL)
	// defaults are preserved for fields the file does not set
	assert.Equal(t, "data.txt", config.IndirectionURL)
	assert.True(t, config.Tracing.Enabled)
	assert.Equal(t, "trace.json", config.Tracing.OutputFile)
}

func TestLoadConfigMissing(t *testing.T) {
	ctx := context.Background()
	config, err := LoadConfig(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")
}
