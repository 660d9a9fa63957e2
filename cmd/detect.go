package cmd

import (
	"bytes"
	"os"

	"github.com/avdl/coilctl/cmd/global"
	"github.com/avdl/coilctl/internal/configuration"
	"github.com/avdl/coilctl/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the coil device files",
	Long:  `Checks the four configured device files and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()

		configuration.DetectAndReadConfigFile()
		configuration.LoadConfig()
		device := configuration.CurrentConfig.Device

		resources := []struct {
			name string
			path string
			mode string
		}{
			{"temp", device.TempPath, "read"},
			{"status", device.StatusPath, "read"},
			{"heat_on", device.HeatOnPath, "write"},
			{"heat_off", device.HeatOffPath, "write"},
		}

		var rows [][]string
		for _, resource := range resources {
			state := "missing"
			info, err := os.Stat(resource.path)
			if err == nil {
				state = info.Mode().String()
			}
			rows = append(rows, []string{
				resource.name, resource.path, resource.mode, state,
			})
		}

		ui.Printfln("> heatcoil")

		tab := table.Table{
			Headers: []string{"Resource", "Path", "Mode", "State"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
