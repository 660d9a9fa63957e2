package coil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/avdl/coilctl/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDeviceConfig creates the four fake device files in a temp dir.
// temp and status are pre-populated, the command sinks start out empty.
func fakeDeviceConfig(t *testing.T, temp, status string) configuration.DeviceConfig {
	t.Helper()
	tmp := t.TempDir()
	config := configuration.DeviceConfig{
		TempPath:    filepath.Join(tmp, "heatcoil.temp"),
		StatusPath:  filepath.Join(tmp, "heatcoil.status"),
		HeatOnPath:  filepath.Join(tmp, "heatcoil.heat_on"),
		HeatOffPath: filepath.Join(tmp, "heatcoil.heat_off"),
	}
	require.NoError(t, os.WriteFile(config.TempPath, []byte(temp), 0o644))
	require.NoError(t, os.WriteFile(config.StatusPath, []byte(status), 0o644))
	require.NoError(t, os.WriteFile(config.HeatOnPath, nil, 0o644))
	require.NoError(t, os.WriteFile(config.HeatOffPath, nil, 0o644))
	return config
}

func fakeDevice(t *testing.T, temp, status string) (*Device, configuration.DeviceConfig, *bytes.Buffer) {
	t.Helper()
	config := fakeDeviceConfig(t, temp, status)

	device, err := Open(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = device.Close() })

	out := &bytes.Buffer{}
	device.out = out
	return device, config, out
}

func TestOpen_MissingResource(t *testing.T) {
	// GIVEN
	config := fakeDeviceConfig(t, "40\n", "1")
	require.NoError(t, os.Remove(config.HeatOnPath))

	// WHEN
	device, err := Open(config)

	// THEN
	assert.Nil(t, device)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestReadTemperature_ConvertsRawValue(t *testing.T) {
	// GIVEN
	device, _, _ := fakeDevice(t, "40\n", "0")

	// WHEN
	value, err := device.ReadTemperature()

	// THEN
	require.NoError(t, err)
	assert.InDelta(t, 50.0, value, 1e-9)
}

func TestReadTemperature_Zero(t *testing.T) {
	device, _, _ := fakeDevice(t, "0\n", "0")

	value, err := device.ReadTemperature()

	require.NoError(t, err)
	assert.InDelta(t, 32.0, value, 1e-9)
}

func TestReadTemperature_MissingTrailingNewline(t *testing.T) {
	device, _, _ := fakeDevice(t, "40", "0")

	value, err := device.ReadTemperature()

	require.NoError(t, err)
	assert.InDelta(t, 50.0, value, 1e-9)
}

func TestReadTemperature_CursorAdvances(t *testing.T) {
	// successive calls read successive lines
	device, _, _ := fakeDevice(t, "40\n80\n", "0")

	first, err := device.ReadTemperature()
	require.NoError(t, err)
	second, err := device.ReadTemperature()
	require.NoError(t, err)

	assert.InDelta(t, 50.0, first, 1e-9)
	assert.InDelta(t, 68.0, second, 1e-9)
}

func TestReadTemperature_ParseError(t *testing.T) {
	device, _, _ := fakeDevice(t, "abc\n", "0")

	_, err := device.ReadTemperature()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestReadStatus_Off(t *testing.T) {
	device, _, out := fakeDevice(t, "40\n", "0")

	status, err := device.ReadStatus()

	require.NoError(t, err)
	assert.Equal(t, StatusOff, status)
	assert.Equal(t, "Coil is off\n", out.String())
}

func TestReadStatus_On(t *testing.T) {
	device, _, out := fakeDevice(t, "40\n", "1")

	status, err := device.ReadStatus()

	require.NoError(t, err)
	assert.Equal(t, StatusOn, status)
	assert.Equal(t, "Coil is on\n", out.String())
}

func TestReadStatus_UnknownBytePassesThroughSilently(t *testing.T) {
	device, _, out := fakeDevice(t, "40\n", "2")

	status, err := device.ReadStatus()

	require.NoError(t, err)
	assert.Equal(t, byte('2'), status)
	assert.Empty(t, out.String())
}

func TestHeatOn_WritesSentinelByte(t *testing.T) {
	// GIVEN
	device, config, _ := fakeDevice(t, "40\n", "0")

	// WHEN
	err := device.HeatOn()

	// THEN the sink contains exactly the on byte, visible to other readers
	require.NoError(t, err)
	data, err := os.ReadFile(config.HeatOnPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{'1'}, data)
}

func TestHeatOff_WritesSentinelByte(t *testing.T) {
	device, config, _ := fakeDevice(t, "40\n", "0")

	err := device.HeatOff()

	require.NoError(t, err)
	data, err := os.ReadFile(config.HeatOffPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{'0'}, data)
}

func TestRewind_AllowsFreshReadings(t *testing.T) {
	device, _, _ := fakeDevice(t, "40\n", "1")

	first, err := device.ReadTemperature()
	require.NoError(t, err)
	firstStatus, err := device.ReadStatus()
	require.NoError(t, err)

	require.NoError(t, device.Rewind())

	second, err := device.ReadTemperature()
	require.NoError(t, err)
	secondStatus, err := device.ReadStatus()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStatus, secondStatus)
}

func TestClose_Idempotent(t *testing.T) {
	device, _, _ := fakeDevice(t, "40\n", "0")

	assert.NoError(t, device.Close())
	assert.NoError(t, device.Close())
}

func TestClose_OperationsFailAfterwards(t *testing.T) {
	// GIVEN
	device, _, _ := fakeDevice(t, "40\n", "0")
	require.NoError(t, device.Close())

	// WHEN / THEN
	_, err := device.ReadTemperature()
	assert.ErrorIs(t, err, os.ErrClosed)

	_, err = device.ReadStatus()
	assert.ErrorIs(t, err, os.ErrClosed)

	assert.ErrorIs(t, device.HeatOn(), os.ErrClosed)
	assert.ErrorIs(t, device.HeatOff(), os.ErrClosed)
	assert.ErrorIs(t, device.Rewind(), os.ErrClosed)
}
