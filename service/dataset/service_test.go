package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	location := filepath.Join(dir, "colleges.txt")
	require.NoError(t, os.WriteFile(location, []byte("100-200:Tech U\n201-300:State College\n"), 0o644))

	srv := New(meta.New())
	table, err := srv.Load(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, model.Table{
		{RankStart: 100, RankEnd: 200, College: "Tech U"},
		{RankStart: 201, RankEnd: 300, College: "State College"},
	}, table)
}

func TestService_LoadMissing(t *testing.T) {
	ctx := context.Background()
	srv := New(meta.New())
	table, err := srv.Load(ctx, filepath.Join(t.TempDir(), "absent.txt"))
	assert.Nil(t, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")
}
