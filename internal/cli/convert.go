package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trapmap/internal/geom"
	"trapmap/internal/logger"
)

func convertCmd(a *app) *cobra.Command {
	var output string
	var axisOrder string

	c := &cobra.Command{
		Use:   "convert <input.shp>",
		Short: "Convert polygon outer rings to a segment list with bounding box",
		Long: "Reads a shapefile (or .geojson/.wkt), pairs consecutive vertices of each " +
			"feature's first ring into segments and writes count, bbox and segments.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Convert.Output
			}
			if axisOrder == "" {
				axisOrder = a.cfg.Convert.AxisOrder
			}
			order, err := geom.ParseAxisOrder(axisOrder)
			if err != nil {
				return err
			}

			d, err := geom.Load(args[0])
			if err != nil {
				return err
			}
			segs := geom.FeatureSegments(d.Rings)
			logger.L().Debug("convert.loaded", "input", args[0], "features", len(d.Rings), "segments", len(segs))

			if err := geom.WriteSegments(output, d.BBox, segs, order); err != nil {
				return err
			}
			logger.L().Info("convert.done", "input", args[0], "output", output, "segments", len(segs), "axis_order", string(order))
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Wrote")+fmt.Sprintf(" %s (%d segments)", output, len(segs)))
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Output file (default from config, mapOut.txt)")
	c.Flags().StringVar(&axisOrder, "axis-order", "", "Field order: xyxy (canonical) or xxyy")
	return c
}
