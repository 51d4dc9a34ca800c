package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/popmeter"
)

func newSetCmd() *cobra.Command {
	var (
		stars     int
		rating    uint8
		playCount uint64
	)

	cmd := &cobra.Command{
		Use:   "set FILE",
		Short: "Set rating, star rating, or play count",
		Long: `Set applies rating edits to a document's first rating frame, creating
one when none exists. With --email (or a configured email), the first
rating frame is re-keyed to that identity after the edits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			setStars := cmd.Flags().Changed("stars")
			setRating := cmd.Flags().Changed("rating")
			setCount := cmd.Flags().Changed("play-count")
			if !setStars && !setRating && !setCount && cfg.Email == "" {
				return fmt.Errorf("nothing to set: pass --stars, --rating, --play-count, or --email")
			}
			if stars < 0 || stars > 5 {
				return fmt.Errorf("stars must be between 0 and 5")
			}

			err := rewriteDocument(cmd, path, func(tag *popmeter.Tag) {
				if setStars {
					tag.SetStarRating(stars)
				}
				if setRating {
					tag.SetRating(rating)
				}
				if setCount {
					tag.SetPlayCount(playCount)
				}
				if cfg.Email != "" {
					tag.SetRatingEmail(cfg.Email)
				}
			})
			if err != nil {
				return err
			}

			log.Info().Str("file", path).Msg("document updated")
			return nil
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 0, "star rating from 0 to 5")
	cmd.Flags().Uint8Var(&rating, "rating", 0, "raw rating byte from 0 to 255")
	cmd.Flags().Uint64Var(&playCount, "play-count", 0, "play counter value")
	cmd.MarkFlagsMutuallyExclusive("stars", "rating")

	return cmd
}
