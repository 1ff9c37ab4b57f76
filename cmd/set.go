package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/config"
	"github.com/bnema/padctl/internal/logger"
	"github.com/bnema/padctl/internal/touchpad"
)

var setSave bool

var setCmd = &cobra.Command{
	Use:   "set <attribute> <value>",
	Short: "Write one touchpad attribute",
	Long: `Write the named attribute on the touchpad. The change takes effect
immediately; with --save it is also stored in the config profile so
'padctl apply' restores it later.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, value := args[0], args[1]

		attr, err := touchpad.LookupAttribute(name)
		if err != nil {
			return err
		}

		pad, conn, err := openTouchpad()
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := attr.Set(pad, value); err != nil {
			return err
		}
		logger.Infof("set %s to %s on %q", name, value, pad.Name())

		if setSave {
			if err := config.SetProfileValue(name, value); err != nil {
				return err
			}
			logger.Infof("saved %s to profile in %s", name, config.GetConfigPath())
		}
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&setSave, "save", false, "also store the value in the config profile")
	rootCmd.AddCommand(setCmd)
}
