package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/touchpad"
	"github.com/bnema/padctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hardware capabilities and current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		pad, conn, err := openTouchpad()
		if err != nil {
			return err
		}
		defer conn.Close()

		caps, err := pad.Capabilities()
		if err != nil {
			return err
		}
		buttons := caps.Buttons()

		var output strings.Builder
		output.WriteString(ui.FormatHeader("TOUCHPAD STATUS", pad.Name()))
		output.WriteString("\n\n")

		output.WriteString(ui.InfoStyle.Render("Hardware"))
		output.WriteString("\n")
		hardware := []struct {
			label string
			value string
		}{
			{"left button", ui.FormatEnabled(buttons.Left)},
			{"middle button", ui.FormatEnabled(buttons.Middle)},
			{"right button", ui.FormatEnabled(buttons.Right)},
			{"finger detection", ui.ValueStyle.Render(fmt.Sprintf("%d", caps.FingerDetection()))},
			{"pressure detection", ui.FormatEnabled(caps.HasPressureDetection())},
			{"finger width detection", ui.FormatEnabled(caps.HasFingerWidthDetection())},
			{"two-finger emulation", ui.FormatEnabled(caps.HasTwoFingerEmulation())},
		}
		for _, h := range hardware {
			output.WriteString(fmt.Sprintf("  %-24s %s\n", h.label, h.value))
		}

		output.WriteString("\n")
		output.WriteString(ui.InfoStyle.Render("Settings"))
		output.WriteString("\n")
		for _, attr := range touchpad.Attributes() {
			if attr.ReadOnly {
				continue
			}
			value, err := attr.Get(pad)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", attr.Name, err)
			}
			output.WriteString(fmt.Sprintf("  %-32s %s\n", attr.Name, ui.ValueStyle.Render(formatValue(value))))
		}

		fmt.Print(output.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
