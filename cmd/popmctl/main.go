package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/simonhull/popmeter"
	"github.com/simonhull/popmeter/internal/cliconfig"
	"github.com/simonhull/popmeter/internal/tagdoc"
)

var (
	cfg     = cliconfig.DefaultConfig()
	cfgPath string
	log     zerolog.Logger
)

func init() {
	log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

const longHelp = `popmctl inspects and edits tag documents: portable snapshots of the
rating (POPM) frames an ID3v2 tag carries.

Documents encode as CBOR or JSON, optionally gzip-compressed. Reads
sniff the encoding, and edits write a document back the way they found
it unless --format or --gzip says otherwise.`

var exampleUsage = strings.TrimSpace(`
  popmctl show song.popm
  popmctl set song.popm --stars 4 --play-count 42
  popmctl --email amy@example.com set song.popm --stars 5
  popmctl convert song.popm song.json --format json
  popmctl lint library/*.popm --strict
  popmctl watch library/
`)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	info := popmeter.GetBuildInfo()

	root := &cobra.Command{
		Use:          "popmctl",
		Short:        "Inspect and edit rating documents",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s (commit %s) %s/%s", info.Version, info.GitCommit, runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.popmctl/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Email, "email", cfg.Email, "identity stamped on rating frames")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "document encoding for writes (cbor or json)")
	root.PersistentFlags().BoolVar(&cfg.Gzip, "gzip", cfg.Gzip, "gzip written documents")
	root.PersistentFlags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "treat document warnings as errors")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet window before the watcher re-lints a changed file")

	root.AddCommand(
		newShowCmd(),
		newSetCmd(),
		newClearCmd(),
		newConvertCmd(),
		newInitCmd(),
		newLintCmd(),
		newWatchCmd(),
	)

	return root
}

// loadConfig resolves the effective configuration: defaults, then the
// config file, then POPMCTL_* environment variables, with explicitly
// set flags winning over both.
func loadConfig(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log = log.Level(level)

	return nil
}

// decodeOptions maps the strict setting onto document reconstruction.
func decodeOptions() []tagdoc.Option {
	if cfg.Strict {
		return []tagdoc.Option{tagdoc.WithStrict()}
	}
	return nil
}

// logWarnings reports document reconstruction warnings.
func logWarnings(path string, warnings []popmeter.Warning) {
	for _, w := range warnings {
		evt := log.Warn().Str("file", path)
		if w.Index >= 0 {
			evt = evt.Int("frame", w.Index)
		}
		evt.Msg(w.Message)
	}
}

// rewriteDocument decodes a document, applies edit to the rebuilt tag,
// and writes a fresh snapshot back atomically. The file keeps its
// encoding and compression unless --format or --gzip was given.
func rewriteDocument(cmd *cobra.Command, path string, edit func(*popmeter.Tag)) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := tagdoc.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	tag, warnings, err := doc.Tag(decodeOptions()...)
	if err != nil {
		return err
	}
	logWarnings(path, warnings)

	edit(tag)

	format, compressed, err := tagdoc.DetectFormat(raw)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		if format, err = tagdoc.ParseFormat(cfg.Format); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("gzip") {
		compressed = cfg.Gzip
	}

	opts := []tagdoc.WriteOption{tagdoc.WithFormat(format)}
	if compressed {
		opts = append(opts, tagdoc.WithGzip())
	}
	return tagdoc.WriteFile(path, tagdoc.FromTag(tag), opts...)
}

// configuredWriteOptions builds write options from the effective config.
func configuredWriteOptions() ([]tagdoc.WriteOption, error) {
	format, err := tagdoc.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	opts := []tagdoc.WriteOption{tagdoc.WithFormat(format)}
	if cfg.Gzip {
		opts = append(opts, tagdoc.WithGzip())
	}
	return opts, nil
}
