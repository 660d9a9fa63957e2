package configuration

import (
	"fmt"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	paths := map[string]string{
		"device.tempPath":    config.Device.TempPath,
		"device.statusPath":  config.Device.StatusPath,
		"device.heatOnPath":  config.Device.HeatOnPath,
		"device.heatOffPath": config.Device.HeatOffPath,
	}

	seen := map[string]string{}
	for key, path := range paths {
		if len(path) <= 0 {
			return fmt.Errorf("%s: device path must not be empty", key)
		}
		if other, ok := seen[path]; ok {
			return fmt.Errorf("%s: path '%s' is already used by %s", key, path, other)
		}
		seen[path] = key
	}

	if config.PollingRate <= 0 {
		return fmt.Errorf("pollingRate: must be > 0")
	}
	if config.TempWindowSize <= 0 {
		return fmt.Errorf("tempWindowSize: must be > 0")
	}

	return nil
}
