package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/config"
	"github.com/bnema/padctl/internal/logger"
)

var (
	flagDisplay  string
	flagDevice   string
	flagConfig   string
	flagLogLevel string

	rootCmd = &cobra.Command{
		Use:   "padctl",
		Short: "padctl - Synaptics touchpad configuration",
		Long: `padctl configures Synaptics touchpads through X11 input device properties.
It discovers touchpad devices, reads and writes their driver tunables
(tapping, scrolling, speed, gestures) and reports the hardware
capabilities of the pad.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				config.SetConfigPath(flagConfig)
			}
			if err := config.Init(); err != nil {
				return err
			}
			level := flagLogLevel
			if level == "" {
				level = config.Get().Logging.LogLevel
			}
			if level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&flagDisplay, "display", "", "X display to connect to (defaults to $DISPLAY)")
	rootCmd.PersistentFlags().StringVarP(&flagDevice, "device", "d", "", "touchpad device name substring")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}
