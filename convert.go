package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minescope/mcmeta/mappings"
)

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a local ProGuard mapping file to descriptor format",
		Long: `Convert rewrites a ProGuard deobfuscation mapping file into the compact
descriptor-based format used by bytecode remapping tools. With no file
argument, the mappings are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src []byte
				err error
			)
			if len(args) == 0 {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrap(err, "reading input")
			}

			converted, report := mappings.ConvertReport(string(src))
			log.WithFields(log.Fields{
				"classes": report.Classes,
				"methods": report.Methods,
				"fields":  report.Fields,
				"skipped": report.Skipped,
			}).Debug("converted mappings")

			return writeOutput(output, converted)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
