package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/popmeter/internal/tagdoc"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the rating data a document carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			doc, err := tagdoc.ReadFile(path)
			if err != nil {
				return err
			}
			tag, warnings, err := doc.Tag(decodeOptions()...)
			if err != nil {
				return err
			}
			logWarnings(path, warnings)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s, %d frames (snapshot %s)\n", path, tag.Version(), tag.Len(), doc.ID)

			if rating, ok := tag.Rating(); ok {
				stars, _ := tag.StarRating()
				who, _ := tag.RatingEmail()
				if who == "" {
					who = "unattributed"
				}
				fmt.Fprintf(out, "  rating: %d/255 (%d stars) by %s\n", rating, stars, who)
				if count, ok := tag.PlayCount(); ok {
					fmt.Fprintf(out, "  plays:  %d\n", count)
				} else {
					fmt.Fprintf(out, "  plays:  unknown\n")
				}
			} else {
				fmt.Fprintln(out, "  no rating frames")
			}

			if tag.Len() > 0 {
				fmt.Fprintln(out, "frames:")
				for key, frame := range tag.All() {
					fmt.Fprintf(out, "  %-34s %5d bytes  %s\n", key, frame.Header().Size, frame)
				}
			}
			return nil
		},
	}
}
