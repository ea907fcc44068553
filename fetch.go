package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minescope/mcmeta/mappings"
	"github.com/minescope/mcmeta/meta"
)

func newFetchCmd() *cobra.Command {
	var (
		side    string
		convert bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "fetch <version>",
		Short: "Download the ProGuard mappings published for a game version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := newClient()

			root, err := client.RootManifest(ctx)
			if err != nil {
				return err
			}
			release := root.Version(args[0])
			if release == nil {
				return errors.Errorf("unknown version %q", args[0])
			}

			log.WithFields(log.Fields{
				"version": release.ID,
				"kind":    release.Kind,
			}).Info("fetching version manifest")

			manifest, err := client.VersionManifest(ctx, release)
			if err != nil {
				return err
			}

			var info meta.DownloadInfo
			switch side {
			case "client":
				info = manifest.Downloads.ClientMappings
			case "server":
				info = manifest.Downloads.ServerMappings
			default:
				return errors.Errorf("unknown side %q, expected client or server", side)
			}

			text, err := client.DownloadString(ctx, info)
			if err != nil {
				return err
			}

			if convert {
				converted, report := mappings.ConvertReport(text)
				log.WithFields(log.Fields{
					"classes": report.Classes,
					"methods": report.Methods,
					"fields":  report.Fields,
					"skipped": report.Skipped,
				}).Info("converted mappings")
				text = converted
			}
			return writeOutput(output, text)
		},
	}

	cmd.Flags().StringVar(&side, "side", "client", "which mappings to download (client or server)")
	cmd.Flags().BoolVar(&convert, "convert", false, "convert the mappings to descriptor format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
