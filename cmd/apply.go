package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/config"
	"github.com/bnema/padctl/internal/logger"
	"github.com/bnema/padctl/internal/touchpad"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the settings profile from the config file",
	Long: `Apply every attribute stored in the [profile] section of the config
file to the touchpad. Typically run once per session from an autostart
script.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := config.Get().Profile
		if len(profile) == 0 {
			logger.Info("profile is empty, nothing to apply")
			return nil
		}

		// Reject unknown attribute names before touching the device.
		for name := range profile {
			if _, err := touchpad.LookupAttribute(name); err != nil {
				return fmt.Errorf("config profile: %w", err)
			}
		}

		pad, conn, err := openTouchpad()
		if err != nil {
			return err
		}
		defer conn.Close()

		applied := 0
		for _, attr := range touchpad.Attributes() {
			value, ok := profile[attr.Name]
			if !ok {
				continue
			}
			if err := attr.Set(pad, value); err != nil {
				return fmt.Errorf("failed to apply %s: %w", attr.Name, err)
			}
			logger.Debugf("applied %s = %v", attr.Name, value)
			applied++
		}

		logger.Infof("applied %d settings to %q", applied, pad.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
