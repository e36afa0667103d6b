package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/raster"
)

var renderCmd = &cobra.Command{
	Use:   "render <gallery.yaml>",
	Short: "Render a gallery to PNG",
	Long: `Mount a gallery headlessly, expand the listed cards, let every
animation finish and write the result as a PNG.

Cards are numbered from 0 in document order; group members count
individually.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderExpand string
	renderWidth  float64
)

func init() {
	renderCmd.Flags().StringP("output", "o", "", "PNG file to write (default gallery.png)")
	renderCmd.Flags().StringVar(&renderExpand, "expand", "", "indices of cards to expand, e.g. 0,2")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 0, "canvas width in logical pixels")
	_ = viper.BindPFlag("output", renderCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	settings := Get()
	background, err := graphics.ParseColor(settings.Background)
	if err != nil {
		return configError("cardshow.render", err)
	}

	s, err := openSession(args[0], settings, renderWidth)
	if err != nil {
		return err
	}
	defer s.Close()

	indices, err := parseIndices(renderExpand)
	if err != nil {
		return err
	}
	if err := s.toggle(indices); err != nil {
		return err
	}
	list, err := s.frame()
	if err != nil {
		return err
	}
	img := raster.Render(list, background)
	if err := raster.WritePNG(settings.Output, img); err != nil {
		return renderError("cardshow.render", err)
	}
	s.log.Info("rendered gallery", "output", settings.Output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	printf(cmd, "wrote %s (%dx%d)\n", settings.Output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
