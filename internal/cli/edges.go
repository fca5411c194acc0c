package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trapmap/internal/codegen"
	"trapmap/internal/logger"
)

func edgesCmd(a *app) *cobra.Command {
	var inputDir, pattern, output, format string

	c := &cobra.Command{
		Use:   "edges",
		Short: "Generate the INPUT_FILES edge literal file from a directory of edge lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Edges
			if inputDir != "" {
				cfg.InputDir = inputDir
			}
			if pattern != "" {
				cfg.Pattern = pattern
			}
			if output != "" {
				cfg.Output = output
			}
			if format != "" {
				cfg.Format = format
			}
			f, err := codegen.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			datasets, err := codegen.Compile(cfg.InputDir, cfg.Pattern, cfg.Output, f)
			if err != nil {
				return err
			}
			for _, ds := range datasets {
				logger.L().Debug("edges.dataset", "name", ds.Name, "segments", len(ds.Segments))
			}
			logger.L().Info("edges.done", "input_dir", cfg.InputDir, "output", cfg.Output, "datasets", len(datasets), "format", string(f))
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Wrote")+" "+cfg.Output)
			return nil
		},
	}

	c.Flags().StringVar(&inputDir, "input-dir", "", "Directory of edge-list files (default InputFiles)")
	c.Flags().StringVar(&pattern, "pattern", "", "Glob for input files (default *.txt)")
	c.Flags().StringVar(&output, "output", "", "Generated file (default js/input_files.js)")
	c.Flags().StringVar(&format, "format", "", "Output format: js or json")
	return c
}
