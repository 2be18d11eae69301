package config

import (
	"flag"
	"fmt"
	"io"
)

// flagSetName is the program name shown in usage output.
const flagSetName = "sync-settings"

// ParseFlags parses command-line arguments (without the program name).
//
// Flags (single or double dash):
//
//	-from            path to the live settings.json
//	-out             directory receiving both synced variants
//	-canonical-name  file name of the as-loaded variant
//	-normalized-name file name of the path-normalized variant
//	-c/-config       json file path with configs
//	-log-level       zerolog level name
//	-version         print build information and exit
//
// Returns flag.ErrHelp (wrapped) when -h or -help is given, and a wrapped
// parse error for unknown flags or missing flag values.
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected argument %q", fs.Arg(0))
	}

	return cfg, nil
}

// PrintUsage writes the flag reference to w.
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&StructuredConfig{})
	fs.SetOutput(w)
	fmt.Fprintf(w, "Usage of %s:\n", flagSetName)
	fs.PrintDefaults()
}

func newFlagSet(cfg *StructuredConfig) *flag.FlagSet {
	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)

	fs.StringVar(&cfg.Sync.Source, "from", "", "Path to the live Windows settings.json (default <USERPROFILE>/.pi/agent/settings.json)")
	fs.StringVar(&cfg.Sync.OutputDir, "out", "", "Directory receiving the synced settings variants")
	fs.StringVar(&cfg.Sync.CanonicalName, "canonical-name", "", "File name of the canonical (as loaded) variant")
	fs.StringVar(&cfg.Sync.NormalizedName, "normalized-name", "", "File name of the path-normalized variant")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print build information and exit")

	return fs
}
