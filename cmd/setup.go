package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/config"
	"github.com/bnema/padctl/internal/logger"
	"github.com/bnema/padctl/internal/touchpad"
	"github.com/bnema/padctl/internal/ui"
	"github.com/bnema/padctl/internal/xinput"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pick the touchpad to configure and save it to the config",
	Long: `Interactively select which touchpad padctl should operate on. The
selection is stored in the config file and used by every other command
unless overridden with --device.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	conn, err := xinput.Connect(displayName())
	if err != nil {
		return err
	}
	defer conn.Close()

	var names []string
	for pad, err := range touchpad.FindAll(conn) {
		if err != nil {
			return err
		}
		names = append(names, pad.Name())
	}
	if len(names) == 0 {
		return touchpad.ErrNoTouchpad
	}

	selected := names[0]
	if len(names) == 1 {
		logger.Infof("auto-selected the only touchpad: %s", selected)
	} else {
		options := make([]huh.Option[string], len(names))
		for i, name := range names {
			options[i] = huh.NewOption(name, name)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select Touchpad").
					Description("Choose the touchpad padctl should configure").
					Options(options...).
					Value(&selected),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("touchpad selection cancelled: %w", err)
		}
	}

	if err := config.SetDeviceName(selected); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✓ Touchpad %q saved to %s", selected, config.GetConfigPath())))
	return nil
}
