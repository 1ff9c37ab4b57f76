package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/touchpad"
	"github.com/bnema/padctl/internal/ui"
	"github.com/bnema/padctl/internal/xinput"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List touchpad devices",
	Long:  `List all touchpads registered on the X server together with their hardware capabilities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := xinput.Connect(displayName())
		if err != nil {
			return err
		}
		defer conn.Close()

		rows := [][]string{}
		for pad, err := range touchpad.FindAll(conn) {
			if err != nil {
				return err
			}
			caps, err := pad.Capabilities()
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				pad.Name(),
				fmt.Sprintf("%d", caps.FingerDetection()),
				buttonList(caps.Buttons()),
				yesNo(caps.HasTwoFingerEmulation()),
			})
		}

		if len(rows) == 0 {
			fmt.Println("No touchpads found")
			return nil
		}

		var output strings.Builder
		output.WriteString(ui.FormatHeader("TOUCHPADS", ""))
		output.WriteString("\n")

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorSubtle)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == 0 {
					return lipgloss.NewStyle().
						Foreground(ui.ColorPrimary).
						Bold(true).
						Padding(0, 1)
				}
				return lipgloss.NewStyle().
					Foreground(ui.ColorText).
					Padding(0, 1)
			}).
			Headers("NAME", "FINGERS", "BUTTONS", "TWO-FINGER EMULATION").
			Rows(rows...)

		output.WriteString(t.String())
		fmt.Println(output.String())

		return nil
	},
}

func buttonList(buttons touchpad.PhysicalButtons) string {
	var names []string
	if buttons.Left {
		names = append(names, "left")
	}
	if buttons.Middle {
		names = append(names, "middle")
	}
	if buttons.Right {
		names = append(names, "right")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(listCmd)
}
