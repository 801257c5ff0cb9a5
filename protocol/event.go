package protocol

import (
	"errors"
	"fmt"
)

// Event op codes
const (
	OpSetPinMode = 1
	OpWritePin   = 2
	OpBusyWait   = 3
)

// ErrUnknownOp is returned when a payload carries an undefined op code
var ErrUnknownOp = errors.New("unknown trace op")

// Event is one HAL call on the wire.
// Pin is not encoded for OpBusyWait.
type Event struct {
	Op    uint8
	Pin   int16
	Value uint32
}

// EncodeEvent appends ev to output
func EncodeEvent(output OutputBuffer, ev Event) {
	EncodeVLQUint(output, uint32(ev.Op))
	if ev.Op != OpBusyWait {
		EncodeVLQInt(output, int32(ev.Pin))
	}
	EncodeVLQUint(output, ev.Value)
}

// DecodeEvent decodes one event and advances data past it
func DecodeEvent(data *[]byte) (Event, error) {
	op, err := DecodeVLQUint(data)
	if err != nil {
		return Event{}, err
	}

	ev := Event{Op: uint8(op)}
	switch ev.Op {
	case OpSetPinMode, OpWritePin:
		pin, err := DecodeVLQInt(data)
		if err != nil {
			return Event{}, err
		}
		ev.Pin = int16(pin)
	case OpBusyWait:
	default:
		return Event{}, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}

	ev.Value, err = DecodeVLQUint(data)
	if err != nil {
		return Event{}, err
	}
	return ev, nil
}

// DecodeEvents decodes a whole frame payload
func DecodeEvents(payload []byte) ([]Event, error) {
	var events []Event
	for len(payload) > 0 {
		ev, err := DecodeEvent(&payload)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
