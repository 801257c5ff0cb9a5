package core

// HAL is the hardware layer the firmware drives.
// Calls are fire-and-forget: the HAL is trusted to succeed and nothing
// here validates the arguments.
type HAL interface {
	// SetPinMode configures the electrical mode of a board pin
	SetPinMode(pin int16, mode uint8)

	// WritePin drives a board pin to a logic level (0 = low, 1 = high)
	WritePin(pin int16, level uint8)

	// BusyWait blocks for at least ms milliseconds
	BusyWait(ms uint32)
}

// Global singleton used by the lifecycle entry points.
var hal HAL

// SetHAL is called by target-specific code to register its HAL.
func SetHAL(h HAL) {
	hal = h
}

// MustHAL returns the registered HAL or panics if missing.
func MustHAL() HAL {
	if hal == nil {
		panic("HAL not configured")
	}
	return hal
}
