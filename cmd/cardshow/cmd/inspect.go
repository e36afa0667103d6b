package cmd

import (
	"encoding/json"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <gallery.yaml>",
	Short: "Print card sizes and settled heights",
	Long: `Mount a gallery headlessly and print, for each card, its configured
header and card sizes and the heights it settles at.

With --tree the render tree is printed as JSON instead, and with --frames
the statistics of the frames run while settling are printed as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var (
	inspectExpand string
	inspectWidth  float64
	inspectTree   bool
	inspectFrames bool
)

func init() {
	inspectCmd.Flags().StringVar(&inspectExpand, "expand", "", "indices of cards to expand before measuring")
	inspectCmd.Flags().Float64Var(&inspectWidth, "width", 0, "canvas width in logical pixels")
	inspectCmd.Flags().BoolVar(&inspectTree, "tree", false, "print the render tree as JSON")
	inspectCmd.Flags().BoolVar(&inspectFrames, "frames", false, "print statistics for the frames run while settling as YAML")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0], Get(), inspectWidth)
	if err != nil {
		return err
	}
	defer s.Close()

	indices, err := parseIndices(inspectExpand)
	if err != nil {
		return err
	}
	if err := s.toggle(indices); err != nil {
		return err
	}

	if inspectTree {
		if _, err := s.frame(); err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s.engine.RenderTree())
	}

	if inspectFrames {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"frames": s.engine.Frames()}); err != nil {
			return err
		}
		return enc.Close()
	}

	entries := s.doc.Entries()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	writeRow(w, "#", "SECTION", "HEADER", "CARD", "EXPANDED", "HEIGHT", "MEASURED")
	for i, card := range s.cards() {
		section, header, body, dynamic := "", "-", "-", false
		if i < len(entries) {
			e := entries[i]
			section = e.Section
			header = formatSize(e.HeaderSize.Width, e.HeaderSize.Height)
			dynamic = e.Dynamic
			if e.Dynamic {
				body = formatSize(e.CardSize.Width, -1)
			} else {
				body = formatSize(e.CardSize.Width, e.CardSize.Height)
			}
		}
		measured := "-"
		if dynamic && card.MeasuredHeight() > 0 {
			measured = formatFloat(card.MeasuredHeight())
		}
		writeRow(w, formatInt(i), section, header, body, formatBool(card.IsExpanded()), formatFloat(card.Height()), measured)
	}
	return w.Flush()
}
