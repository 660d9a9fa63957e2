package cmd

import (
	"github.com/avdl/coilctl/internal/ui"
	"github.com/spf13/cobra"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Turn the heating coil on",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		device, err := openDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if err := device.HeatOn(); err != nil {
			return err
		}

		ui.Success("Heating coil turned on")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(onCmd)
}
