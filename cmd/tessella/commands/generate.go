package commands

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessella/render"
	"github.com/katalvlaran/tessella/uniform"
)

func generateCmd() *cobra.Command {
	var (
		variant string
		width   int
		height  int
		format  string
		out     string
		side    float64
		animate bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a named tiling and write it as SVG, HTML or PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := uniform.Get(variant)
			if err != nil {
				return err
			}
			t, err := uniform.Generate(variant, width, height)
			if err != nil {
				return err
			}

			opts := render.DefaultOptions()
			opts.Side = side
			opts.Animate = animate

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "svg":
				return render.SVG(w, t, opts)
			case "html":
				title := fmt.Sprintf("%s %s", v.Name, v.Signature)

				return render.HTML(w, t, title, opts)
			case "png":
				img, err := render.Rasterize(t, opts)
				if err != nil {
					return err
				}

				return png.Encode(w, img)
			default:
				return fmt.Errorf("unknown format %q (want svg, html or png)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", uniform.NameTwoUniform, "variant name (see 'tessella list')")
	cmd.Flags().IntVarP(&width, "width", "W", 8, "lattice columns")
	cmd.Flags().IntVarP(&height, "height", "H", 8, "lattice rows")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, html or png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&side, "side", 40, "pixels per polygon side")
	cmd.Flags().BoolVar(&animate, "animate", false, "emit SMIL animation markup (svg/html)")

	return cmd
}
