package cli

import (
	"github.com/spf13/cobra"

	"trapmap/internal/geom"
	"trapmap/internal/logger"
	"trapmap/internal/tui"
)

func viewCmd(a *app) *cobra.Command {
	var axisOrder string

	c := &cobra.Command{
		Use:   "view [path]",
		Short: "Preview segments of a segment file, edge list, shapefile, GeoJSON or WKT in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if axisOrder == "" {
				axisOrder = a.cfg.Convert.AxisOrder
			}
			order, err := geom.ParseAxisOrder(axisOrder)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			logger.L().Debug("view.start", "path", path)
			return tui.Run(path, order)
		},
	}

	c.Flags().StringVar(&axisOrder, "axis-order", "", "Field order of segment files: xyxy or xxyy")
	return c
}
