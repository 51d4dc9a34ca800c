package main

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/popmeter/internal/tagdoc"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Transcode a document between encodings",
		Long: `Convert re-encodes a document using --format and --gzip. The snapshot
itself (ID, timestamp, frames) is carried over unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tagdoc.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts, err := configuredWriteOptions()
			if err != nil {
				return err
			}
			if err := tagdoc.WriteFile(args[1], doc, opts...); err != nil {
				return err
			}

			log.Info().
				Str("from", args[0]).
				Str("to", args[1]).
				Str("format", cfg.Format).
				Bool("gzip", cfg.Gzip).
				Msg("document converted")
			return nil
		},
	}
}
