// Package config reads the TOML configuration of the phylo command.
//
// An example configuration:
//
//	[newick]
//	print_comments = false
//	precision = 6
//
//	[logging]
//	level = "debug"
//	logfile = "phylo.log"
//	max_log_size = 100 # MB
//	max_log_age = 30   # days
//
//	[snapshot]
//	compression = "zstd"
//
//	[bipartition]
//	workers = 4
//
// Settings left out keep their default values.
package config

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/TuftsBCB/phylo/logging"
	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/snapshot"
	"github.com/pkg/errors"
)

type Config struct {
	Newick      NewickConfig      `toml:"newick"`
	Logging     logging.Config    `toml:"logging"`
	Snapshot    SnapshotConfig    `toml:"snapshot"`
	Bipartition BipartitionConfig `toml:"bipartition"`
}

// NewickConfig holds the options for writing Newick text.
type NewickConfig struct {
	PrintNames         bool `toml:"print_names"`
	PrintBranchLengths bool `toml:"print_branch_lengths"`
	PrintComments      bool `toml:"print_comments"`
	PrintTags          bool `toml:"print_tags"`
	Precision          int  `toml:"precision"`
}

// Options converts c to writer options.
func (c NewickConfig) Options() newick.WriterOptions {
	return newick.WriterOptions{
		PrintNames:         c.PrintNames,
		PrintBranchLengths: c.PrintBranchLengths,
		PrintComments:      c.PrintComments,
		PrintTags:          c.PrintTags,
		Precision:          c.Precision,
	}
}

type SnapshotConfig struct {
	// "none" or "zstd"
	Compression string `toml:"compression"`
}

func (c SnapshotConfig) Compress() (snapshot.Compression, error) {
	return snapshot.ParseCompression(c.Compression)
}

type BipartitionConfig struct {
	// The number of trees processed at once. Zero means all of them.
	Workers int `toml:"workers"`
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	opts := newick.DefaultWriterOptions()
	return &Config{
		Newick: NewickConfig{
			PrintNames:         opts.PrintNames,
			PrintBranchLengths: opts.PrintBranchLengths,
			PrintComments:      opts.PrintComments,
			PrintTags:          opts.PrintTags,
			Precision:          opts.Precision,
		},
		Logging:  logging.Config{Level: "warn"},
		Snapshot: SnapshotConfig{Compression: "zstd"},
	}
}

// Load reads the configuration in filename over the defaults. Unknown keys
// are an error. A relative log file path is taken relative to the directory
// of filename.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, errors.New("config: no configuration file provided")
	}
	c := Default()
	md, err := toml.DecodeFile(filename, c)
	if err != nil {
		return nil, errors.Wrap(err, "config: could not decode TOML config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("config: unknown keys in %s: %s",
			filename, strings.Join(keys, ", "))
	}
	if _, err := c.Snapshot.Compress(); err != nil {
		return nil, errors.Wrap(err, "config")
	}

	// [logging].logfile
	if c.Logging.Logfile != "" && !filepath.IsAbs(c.Logging.Logfile) {
		dir, err := filepath.Abs(filepath.Dir(filename))
		if err != nil {
			return nil, errors.Wrap(err, "config: converting logfile to absolute path")
		}
		c.Logging.Logfile = filepath.Join(dir, c.Logging.Logfile)
	}
	return c, nil
}
