package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/touchpad"
)

var getCmd = &cobra.Command{
	Use:   "get [attribute...]",
	Short: "Read touchpad attributes",
	Long: `Read the named attributes from the touchpad. Without arguments every
attribute is printed, one per line. Run 'padctl attributes' for the
list of names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pad, conn, err := openTouchpad()
		if err != nil {
			return err
		}
		defer conn.Close()

		// A single requested attribute prints bare, for scripting.
		if len(args) == 1 {
			attr, err := touchpad.LookupAttribute(args[0])
			if err != nil {
				return err
			}
			value, err := attr.Get(pad)
			if err != nil {
				return err
			}
			fmt.Println(formatValue(value))
			return nil
		}

		attrs := touchpad.Attributes()
		if len(args) > 0 {
			attrs = attrs[:0]
			for _, name := range args {
				attr, err := touchpad.LookupAttribute(name)
				if err != nil {
					return err
				}
				attrs = append(attrs, *attr)
			}
		}

		for _, attr := range attrs {
			value, err := attr.Get(pad)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", attr.Name, err)
			}
			fmt.Printf("%s = %s\n", attr.Name, formatValue(value))
		}
		return nil
	},
}

var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "List attribute names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, attr := range touchpad.Attributes() {
			access := "rw"
			if attr.ReadOnly {
				access = "ro"
			}
			fmt.Printf("%-32s %-6s %s  %s\n", attr.Name, attr.Kind, access, attr.Doc)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(attributesCmd)
}
