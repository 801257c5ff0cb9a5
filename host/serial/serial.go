// Package serial opens the port the firmware streams its HAL trace on.
package serial

import (
	"io"
)

// Port represents a serial port interface
// Native ports use github.com/tarm/serial; tests substitute any
// io.ReadWriteCloser.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered input
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate of the firmware trace UART (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud matches the firmware trace UART
const DefaultBaud = 115200

// DefaultConfig returns the configuration matching the firmware defaults
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100, // 100ms read timeout
	}
}
