package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"trapmap/internal/config"
	"trapmap/internal/logger"
)

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	cfg config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("trapmap:")+" "+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		debug   bool
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:           "trapmap",
		Short:         "Prepare segment data for the trapezoidal map demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			explicit := cmd.Flags().Changed("config")
			cfg, err := config.Load(cfgPath, explicit)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: debug})
			logger.L().Debug("config.loaded", "path", cfgPath, "explicit", explicit)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "YAML config file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(convertCmd(a), edgesCmd(a), viewCmd(a))
	return cmd
}
