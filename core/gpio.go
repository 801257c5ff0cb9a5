// Typed pin operations
// Board converts the symbolic pin vocabulary into HAL calls
package core

// Board issues typed pin operations against a HAL
type Board struct {
	hal HAL
}

// NewBoard binds a Board to the given HAL
func NewBoard(h HAL) *Board {
	return &Board{hal: h}
}

// ConfigurePin sets the electrical mode of a pin
func (b *Board) ConfigurePin(pin PinIdentity, mode PinMode) {
	b.hal.SetPinMode(pin.Wire(), mode.Code())
}

// WritePin drives a pin to a logic level
// The result is hardware-dependent if the pin is not an output
func (b *Board) WritePin(pin PinIdentity, level LogicLevel) {
	b.hal.WritePin(pin.Wire(), level.Code())
}

// Delay blocks for at least ms milliseconds. It cannot be cancelled.
func (b *Board) Delay(ms uint32) {
	b.hal.BusyWait(ms)
}
