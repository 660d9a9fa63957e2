package cmd

import (
	"fmt"
	"os"

	"github.com/avdl/coilctl/cmd/global"
	"github.com/avdl/coilctl/internal/coil"
	"github.com/avdl/coilctl/internal/configuration"
	"github.com/avdl/coilctl/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coilctl",
	Short: "Control a heating coil through its device files.",
	Long: `coilctl is a small utility to read the temperature and status of
a heating coil driver and to turn the coil on and off.`,
	// without a subcommand there is nothing to do on a one-shot device
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/coilctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("coil", pterm.NewStyle(pterm.FgLightRed)),
		pterm.NewLettersFromStringWithStyle("ctl", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("coilctl")
	}
}

// openDevice loads and validates the configuration and opens the coil device.
// The caller is responsible for closing it.
func openDevice() (*coil.Device, error) {
	configPath := configuration.DetectAndReadConfigFile()
	if len(configPath) > 0 {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	if err := configuration.Validate(); err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return coil.Open(configuration.CurrentConfig.Device)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
