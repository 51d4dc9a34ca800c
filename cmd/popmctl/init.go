package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/popmeter"
	"github.com/simonhull/popmeter/internal/cliconfig"
	"github.com/simonhull/popmeter/internal/tagdoc"
)

func newInitCmd() *cobra.Command {
	var versionName string

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Create a fresh empty document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if cliconfig.FileExists(path) {
				return fmt.Errorf("%s already exists", path)
			}

			v, err := popmeter.ParseVersion(versionName)
			if err != nil {
				return err
			}

			opts, err := configuredWriteOptions()
			if err != nil {
				return err
			}

			doc := tagdoc.FromTag(popmeter.NewTag(v))
			if err := tagdoc.WriteFile(path, doc, opts...); err != nil {
				return err
			}

			log.Info().
				Str("file", path).
				Str("version", versionName).
				Str("id", doc.ID).
				Msg("document created")
			return nil
		},
	}

	cmd.Flags().StringVar(&versionName, "version", popmeter.Version24.String(), "tag layout (ID3v2.2, ID3v2.3, ID3v2.4)")

	return cmd
}
