package cmd

import (
	"github.com/avdl/coilctl/internal/ui"
	"github.com/spf13/cobra"
)

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn the heating coil off",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		device, err := openDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if err := device.HeatOff(); err != nil {
			return err
		}

		ui.Success("Heating coil turned off")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(offCmd)
}
