package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tomortec/drift-expandable/cmd/cardshow/internal/gallery"
)

var validateCmd = &cobra.Command{
	Use:   "validate <gallery.yaml>",
	Short: "Check a gallery document",
	Long: `Load a gallery, check its schema version and build every section.

Header and body lists that cannot be paired (more than one header and a
different number of bodies) fail with a non-zero exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := gallery.Load(args[0])
	if err != nil {
		return configError("cardshow.validate", err)
	}
	if _, err := doc.Build(); err != nil {
		return configError("cardshow.validate", err)
	}
	printf(cmd, "%s: ok (%d sections, %d cards, schema %s)\n", args[0], len(doc.Sections), len(doc.Entries()), doc.Version)
	return nil
}
