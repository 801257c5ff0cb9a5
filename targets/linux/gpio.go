//go:build linux

package main

import (
	"fmt"
	"time"

	"blinky/core"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// boardPins maps board pin numbers to BCM GPIO numbers on a Raspberry Pi
// header. The Pi has no ADC, so A0-A2 are plain GPIOs.
var boardPins = map[int16]int{
	0:  17,
	1:  18,
	2:  27,
	3:  22,
	4:  23,
	5:  24,
	6:  25,
	7:  4,
	10: 5,
	11: 6,
	12: 13,
}

// PeriphHAL implements core.HAL with periph.io GPIO.
// periph reports errors; the HAL contract has no error path, so they are
// logged and dropped.
type PeriphHAL struct {
	prefix string
	log    *logrus.Logger
	pins   map[int16]gpio.PinIO
}

// NewPeriphHAL creates a HAL looking pins up as prefix+number (e.g. GPIO4)
func NewPeriphHAL(prefix string, log *logrus.Logger) *PeriphHAL {
	return &PeriphHAL{
		prefix: prefix,
		log:    log,
		pins:   make(map[int16]gpio.PinIO),
	}
}

// lookup resolves a board pin, caching the result
func (h *PeriphHAL) lookup(pin int16) gpio.PinIO {
	if p, ok := h.pins[pin]; ok {
		return p
	}
	bcm, ok := boardPins[pin]
	if !ok {
		h.log.WithField("pin", pin).Warn("no such board pin")
		return nil
	}
	name := fmt.Sprintf("%s%d", h.prefix, bcm)
	p := gpioreg.ByName(name)
	if p == nil {
		h.log.WithField("name", name).Warn("gpio not found")
		return nil
	}
	h.pins[pin] = p
	return p
}

func (h *PeriphHAL) SetPinMode(pin int16, mode uint8) {
	p := h.lookup(pin)
	if p == nil {
		return
	}

	var err error
	switch mode {
	case core.Input.Code(), core.AnalogInput.Code():
		err = p.In(gpio.Float, gpio.NoEdge)
	case core.InputPullUp.Code():
		err = p.In(gpio.PullUp, gpio.NoEdge)
	case core.InputPullDown.Code():
		err = p.In(gpio.PullDown, gpio.NoEdge)
	case core.Output.Code(), core.AFOutputPushPull.Code(), core.AFOutputDrain.Code(), core.AnalogOutput.Code():
		err = p.Out(gpio.Low)
	default:
		return
	}
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{"pin": p.Name(), "mode": mode}).Warn("set pin mode failed")
	}
}

func (h *PeriphHAL) WritePin(pin int16, level uint8) {
	p := h.lookup(pin)
	if p == nil {
		return
	}
	l := gpio.Level(level != core.Low.Code())
	if err := p.Out(l); err != nil {
		h.log.WithError(err).WithField("pin", p.Name()).Warn("write pin failed")
	}
}

func (h *PeriphHAL) BusyWait(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
