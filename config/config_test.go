package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phylo.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, newick.DefaultWriterOptions(), c.Newick.Options())
	compress, err := c.Snapshot.Compress()
	require.NoError(t, err)
	assert.Equal(t, snapshot.Zstd, compress)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[newick]
print_comments = false
precision = 3

[logging]
level = "debug"
logfile = "logs/phylo.log"
max_log_size = 10

[snapshot]
compression = "none"

[bipartition]
workers = 4
`)
	c, err := Load(path)
	require.NoError(t, err)

	opts := c.Newick.Options()
	assert.True(t, opts.PrintNames)
	assert.True(t, opts.PrintBranchLengths)
	assert.False(t, opts.PrintComments)
	assert.Equal(t, 3, opts.Precision)

	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 10, c.Logging.MaxSize)
	assert.True(t, filepath.IsAbs(c.Logging.Logfile))
	assert.Equal(t, filepath.Join(filepath.Dir(path), "logs", "phylo.log"), c.Logging.Logfile)

	compress, err := c.Snapshot.Compress()
	require.NoError(t, err)
	assert.Equal(t, snapshot.Uncompressed, compress)
	assert.Equal(t, 4, c.Bipartition.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "[newick\n"},
		{"unknown key", "[newick]\nprint_colors = true\n"},
		{"wrong type", "[newick]\nprecision = \"high\"\n"},
		{"bad compression", "[snapshot]\ncompression = \"lz4\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.text))
			assert.Error(t, err)
		})
	}

	_, err := Load("")
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
