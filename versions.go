package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List game versions from the root manifest, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := newClient().RootManifest(cmd.Context())
			if err != nil {
				return err
			}
			for _, release := range manifest.SortedByReleaseTime() {
				if kind != "" && string(release.Kind) != kind {
					continue
				}
				fmt.Printf("%s\t%s\t%s\n", release.ID, release.Kind, release.ReleaseTime.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only list versions of this kind (release, snapshot, old_beta, old_alpha)")
	return cmd
}
