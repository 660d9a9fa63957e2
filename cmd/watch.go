package cmd

import (
	"time"

	"github.com/avdl/coilctl/internal/coil"
	"github.com/avdl/coilctl/internal/configuration"
	"github.com/avdl/coilctl/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var watchSamples int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically sample the coil temperature",
	Long: `Samples the coil temperature once per polling interval and prints a
graph of the collected readings. If a reading exceeds the configured thermal
limit while the coil is on, the coil is forced off.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		device, err := openDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		config := configuration.CurrentConfig

		samples := watchSamples
		if samples <= 0 {
			samples = config.TempWindowSize
		}

		values := make([]float64, 0, samples)
		for i := 0; i < samples; i++ {
			if i > 0 {
				time.Sleep(config.PollingRate)
			}
			// the driver rewrites the file contents on every read,
			// so each sample needs a fresh cursor
			if err := device.Rewind(); err != nil {
				return err
			}

			value, err := device.ReadTemperature()
			if err != nil {
				return err
			}
			values = append(values, value)
			ui.Printfln("%.2f °F", value)

			if value > config.ThermalLimit {
				if err := forceOffIfHeating(device, value); err != nil {
					return err
				}
			}
		}

		graph := asciigraph.Plot(values,
			asciigraph.Height(11),
			asciigraph.Caption("coil temperature (°F)"),
		)
		ui.Printfln("%s", graph)
		return nil
	},
}

// forceOffIfHeating turns the coil off when the status byte reports it as on.
// Mirrors the driver-side watchdog, which cuts power above its own limit.
func forceOffIfHeating(device *coil.Device, value float64) error {
	status, err := device.ReadStatus()
	if err != nil {
		return err
	}
	if status != coil.StatusOn {
		return nil
	}

	ui.Warning("Thermal limit exceeded (%.2f °F), turning heating coil off", value)
	return device.HeatOff()
}

func init() {
	watchCmd.Flags().IntVarP(
		&watchSamples,
		"samples", "n",
		0,
		"Number of samples to take (default is the configured tempWindowSize)",
	)
	rootCmd.AddCommand(watchCmd)
}
