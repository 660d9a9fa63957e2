package coil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avdl/coilctl/internal/configuration"
)

const (
	// StatusOff and StatusOn are the status bytes reported by the driver.
	StatusOff byte = '0'
	StatusOn  byte = '1'
)

var (
	// ErrResourceUnavailable indicates that one of the device files could not be opened.
	ErrResourceUnavailable = errors.New("coil: resource unavailable")
	// ErrParse indicates that the temperature source returned something other than a decimal number.
	ErrParse = errors.New("coil: invalid temperature reading")
)

// Device wraps the four pseudo-files exposed by the heating coil driver.
// All handles are opened once by Open and stay open until Close.
type Device struct {
	temp       *os.File
	tempReader *bufio.Reader
	status     *os.File
	heatOn     *os.File
	heatOff    *os.File

	// status lines are written here, defaults to os.Stdout
	out io.Writer

	closed bool
}

// Open opens the four device files described by config.
// If any of them cannot be opened, an error matching ErrResourceUnavailable
// is returned and no handle is left open.
func Open(config configuration.DeviceConfig) (*Device, error) {
	device := &Device{
		out: os.Stdout,
	}

	var err error
	if device.temp, err = os.Open(config.TempPath); err != nil {
		return nil, openError(device, err)
	}
	device.tempReader = bufio.NewReader(device.temp)

	if device.status, err = os.Open(config.StatusPath); err != nil {
		return nil, openError(device, err)
	}
	if device.heatOn, err = os.OpenFile(config.HeatOnPath, os.O_WRONLY|os.O_TRUNC, 0); err != nil {
		return nil, openError(device, err)
	}
	if device.heatOff, err = os.OpenFile(config.HeatOffPath, os.O_WRONLY|os.O_TRUNC, 0); err != nil {
		return nil, openError(device, err)
	}

	return device, nil
}

func openError(device *Device, err error) error {
	_ = device.Close()
	return fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
}

// ReadTemperature reads the next line from the temperature source and
// converts the raw value (quarter degrees Celsius) to Fahrenheit.
// The read cursor advances; see Rewind.
func (device *Device) ReadTemperature() (float64, error) {
	if device.closed {
		return 0, fmt.Errorf("coil: read temperature: %w", os.ErrClosed)
	}

	line, err := device.tempReader.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return 0, fmt.Errorf("coil: read temperature: %w", err)
	}

	raw, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, strings.TrimSpace(line))
	}

	return raw*0.25*(9.0/5.0) + 32, nil
}

// ReadStatus reads a single byte from the status source and returns it as-is.
// '0' and '1' additionally print a human readable line to standard output,
// any other byte is passed through silently.
func (device *Device) ReadStatus() (byte, error) {
	if device.closed {
		return 0, fmt.Errorf("coil: read status: %w", os.ErrClosed)
	}

	var buf [1]byte
	if _, err := io.ReadFull(device.status, buf[:]); err != nil {
		return 0, fmt.Errorf("coil: read status: %w", err)
	}

	switch buf[0] {
	case StatusOff:
		fmt.Fprintln(device.out, "Coil is off")
	case StatusOn:
		fmt.Fprintln(device.out, "Coil is on")
	}

	return buf[0], nil
}

// HeatOn writes the on-command byte and syncs the sink, so the driver
// observes the command before HeatOn returns.
func (device *Device) HeatOn() error {
	return device.command(device.heatOn, StatusOn)
}

// HeatOff writes the off-command byte and syncs the sink.
func (device *Device) HeatOff() error {
	return device.command(device.heatOff, StatusOff)
}

func (device *Device) command(sink *os.File, value byte) error {
	if device.closed {
		return fmt.Errorf("coil: command: %w", os.ErrClosed)
	}

	if _, err := sink.Write([]byte{value}); err != nil {
		return fmt.Errorf("coil: command: %w", err)
	}
	if err := sink.Sync(); err != nil {
		return fmt.Errorf("coil: command: %w", err)
	}
	return nil
}

// Rewind seeks the temperature and status sources back to the start.
// The read operations never seek on their own, polling callers have to
// rewind between readings.
func (device *Device) Rewind() error {
	if device.closed {
		return fmt.Errorf("coil: rewind: %w", os.ErrClosed)
	}

	if _, err := device.temp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("coil: rewind: %w", err)
	}
	device.tempReader.Reset(device.temp)

	if _, err := device.status.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("coil: rewind: %w", err)
	}
	return nil
}

// Close releases all four handles. Close is idempotent, calling it again
// after a successful close is a no-op.
func (device *Device) Close() error {
	if device.closed {
		return nil
	}
	device.closed = true

	var err error
	for _, file := range []*os.File{device.temp, device.status, device.heatOn, device.heatOff} {
		if file == nil {
			continue
		}
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
