package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minescope/mcmeta/meta"
)

var (
	manifestURL string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mcmeta",
		Short:        "Fetch Minecraft version metadata and convert ProGuard mappings",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&manifestURL, "manifest-url", meta.ManifestURL, "root version manifest to fetch from")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionsCmd(), newFetchCmd(), newConvertCmd())
	return cmd
}

func newClient() *meta.Client {
	return &meta.Client{ManifestURL: manifestURL}
}

// writeOutput writes converted or downloaded text to a file, or to stdout
// when no path was given
func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
