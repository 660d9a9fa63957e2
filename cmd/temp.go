package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Get the current temperature reading of the coil in °F",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		device, err := openDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		value, err := device.ReadTemperature()
		if err != nil {
			return err
		}

		fmt.Printf("%.2f", value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tempCmd)
}
