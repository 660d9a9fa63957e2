package configuration

import (
	"errors"
	"os"
	"time"

	"github.com/avdl/coilctl/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DeviceConfig holds the paths of the four pseudo-files exposed by
// the heating coil driver.
type DeviceConfig struct {
	TempPath    string `json:"tempPath"`
	StatusPath  string `json:"statusPath"`
	HeatOnPath  string `json:"heatOnPath"`
	HeatOffPath string `json:"heatOffPath"`
}

type Configuration struct {
	Device DeviceConfig `json:"device"`

	// PollingRate is the sampling interval of the watch command
	PollingRate time.Duration `json:"pollingRate"`
	// TempWindowSize is the number of samples the watch command collects
	TempWindowSize int `json:"tempWindowSize"`
	// ThermalLimit is the temperature (°F) above which watch forces the coil off
	ThermalLimit float64 `json:"thermalLimit"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("coilctl")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/coilctl/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("device.tempPath", "/dev/heatcoil.temp")
	viper.SetDefault("device.statusPath", "/dev/heatcoil.status")
	viper.SetDefault("device.heatOnPath", "/dev/heatcoil.heat_on")
	viper.SetDefault("device.heatOffPath", "/dev/heatcoil.heat_off")

	viper.SetDefault("pollingRate", 1*time.Second)
	viper.SetDefault("tempWindowSize", 60)
	viper.SetDefault("thermalLimit", 1050.0)
}

// DetectAndReadConfigFile reads the config file if one exists.
// Unlike a daemon setup, the device node paths have usable defaults,
// so a missing config file is fine.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			ui.Fatal("Error reading config file, %s", err)
		}
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	// load default configuration values
	err := viper.Unmarshal(&CurrentConfig)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
