package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/popmeter"
	"github.com/simonhull/popmeter/internal/tagdoc"
)

// lintResult is one document's health check.
type lintResult struct {
	path     string
	frames   int
	warnings []popmeter.Warning
	err      error
}

// lintFile decodes one document leniently and collects its problems.
func lintFile(path string) lintResult {
	res := lintResult{path: path}

	doc, err := tagdoc.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}

	tag, warnings, err := doc.Tag()
	if err != nil {
		res.err = err
		return res
	}

	res.frames = tag.Len()
	res.warnings = warnings
	return res
}

// report logs the result and says whether it counts as a failure under
// the strict setting.
func (r lintResult) report() bool {
	if r.err != nil {
		log.Error().Str("file", r.path).Err(r.err).Msg("document failed lint")
		return true
	}

	logWarnings(r.path, r.warnings)
	if len(r.warnings) > 0 {
		return cfg.Strict
	}

	log.Debug().Str("file", r.path).Int("frames", r.frames).Msg("document ok")
	return false
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILES...",
		Short: "Validate documents and report problems",
		Long: `Lint decodes every document leniently and reports schema violations,
truncated frames, and size mismatches. With --strict, warnings count as
failures. The exit status is non-zero when any document fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := new(errgroup.Group)
			g.SetLimit(runtime.NumCPU())

			results := make([]lintResult, len(args))
			for i, path := range args {
				g.Go(func() error {
					results[i] = lintFile(path)
					return nil
				})
			}
			_ = g.Wait() // Workers only record results

			failed := 0
			for _, res := range results {
				if res.report() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed lint", failed, len(results))
			}

			log.Info().Int("documents", len(results)).Msg("all documents ok")
			return nil
		},
	}
}
