package cmd

import (
	"github.com/avdl/coilctl/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get the current on/off status of the coil",
	Long:  `Reads the status byte of the coil driver. The device reports
'0' (off) or '1' (on), anything else is passed through silently.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		device, err := openDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		// ReadStatus prints the "Coil is on/off" line itself
		status, err := device.ReadStatus()
		if err != nil {
			return err
		}

		ui.Debug("raw status byte: %c", status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
