package main

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/popmeter"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear FILE",
		Short: "Remove every rating frame from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var removed int
			err := rewriteDocument(cmd, path, func(tag *popmeter.Tag) {
				before := tag.Len()
				tag.ClearRating()
				removed = before - tag.Len()
			})
			if err != nil {
				return err
			}

			log.Info().Str("file", path).Int("removed", removed).Msg("rating frames cleared")
			return nil
		},
	}
}
