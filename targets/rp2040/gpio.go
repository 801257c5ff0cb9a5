//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"blinky/core"

	"tinygo.org/x/drivers/delay"
)

// boardPins maps board pin numbers to MCU pins.
// D7 is the on-board LED; A0-A2 are the ADC-capable GPIO26-28.
var boardPins = [...]machine.Pin{
	0:  machine.GPIO2,
	1:  machine.GPIO3,
	2:  machine.GPIO4,
	3:  machine.GPIO5,
	4:  machine.GPIO6,
	5:  machine.GPIO7,
	6:  machine.GPIO10,
	7:  machine.LED,
	8:  machine.NoPin,
	9:  machine.NoPin,
	10: machine.GPIO26,
	11: machine.GPIO27,
	12: machine.GPIO28,
}

// RPHAL implements core.HAL on the RP2040/RP2350 GPIO block
type RPHAL struct{}

// NewRPHAL creates the RP2040 HAL
func NewRPHAL() *RPHAL {
	return &RPHAL{}
}

// SetPinMode configures a board pin. Unknown pins and PIN_MODE_NONE are ignored.
func (h *RPHAL) SetPinMode(pin int16, mode uint8) {
	p := pinNumberToMachinePin(pin)
	if p == machine.NoPin {
		return
	}

	var cfg machine.PinConfig
	switch mode {
	case core.Input.Code():
		cfg.Mode = machine.PinInput
	case core.InputPullUp.Code():
		cfg.Mode = machine.PinInputPullup
	case core.InputPullDown.Code():
		cfg.Mode = machine.PinInputPulldown
	case core.AnalogInput.Code():
		cfg.Mode = machine.PinAnalog
	case core.Output.Code(), core.AFOutputPushPull.Code(), core.AFOutputDrain.Code(), core.AnalogOutput.Code():
		// No open drain or DAC on this MCU
		cfg.Mode = machine.PinOutput
	default:
		return
	}
	p.Configure(cfg)
}

// WritePin drives a board pin low (0) or high (anything else)
func (h *RPHAL) WritePin(pin int16, level uint8) {
	p := pinNumberToMachinePin(pin)
	if p == machine.NoPin {
		return
	}
	p.Set(level != core.Low.Code())
}

// BusyWait spins for ms milliseconds
func (h *RPHAL) BusyWait(ms uint32) {
	for i := uint32(0); i < ms; i++ {
		delay.Sleep(time.Millisecond)
	}
}

// pinNumberToMachinePin converts a board pin number to a machine.Pin
func pinNumberToMachinePin(pin int16) machine.Pin {
	if pin < 0 || int(pin) >= len(boardPins) {
		return machine.NoPin
	}
	return boardPins[pin]
}
