package core

// PinIdentity names a physical board pin.
// The value is an index into pinTable, never the wire id itself.
type PinIdentity uint8

// Board pins
const (
	D0 PinIdentity = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	A0
	A1
	A2

	numPins
)

// pinTable maps each PinIdentity to its board pin number.
// Analog inputs start at 10 on the board pin map.
var pinTable = [numPins]struct {
	wire int16
	name string
}{
	D0: {0, "D0"},
	D1: {1, "D1"},
	D2: {2, "D2"},
	D3: {3, "D3"},
	D4: {4, "D4"},
	D5: {5, "D5"},
	D6: {6, "D6"},
	D7: {7, "D7"},
	A0: {10, "A0"},
	A1: {11, "A1"},
	A2: {12, "A2"},
}

// PinWireNone is the wire id of a value outside the pin table.
// No board pin uses it, so HALs ignore it.
const PinWireNone int16 = -1

// Wire returns the pin id passed to the HAL
func (p PinIdentity) Wire() int16 {
	if p >= numPins {
		return PinWireNone
	}
	return pinTable[p].wire
}

func (p PinIdentity) String() string {
	if p >= numPins {
		return "PIN(" + utoa(uint32(p)) + ")"
	}
	return pinTable[p].name
}

// PinFromWire returns the pin whose board number is wire
func PinFromWire(wire int16) (PinIdentity, bool) {
	for p := PinIdentity(0); p < numPins; p++ {
		if pinTable[p].wire == wire {
			return p, true
		}
	}
	return 0, false
}

// AllPins lists every defined pin in table order
func AllPins() []PinIdentity {
	pins := make([]PinIdentity, 0, numPins)
	for p := PinIdentity(0); p < numPins; p++ {
		pins = append(pins, p)
	}
	return pins
}

// PinMode is the electrical configuration of a pin
type PinMode uint8

// Pin modes
const (
	Input PinMode = iota
	Output
	InputPullUp
	InputPullDown
	AFOutputPushPull // alternate function, push-pull
	AFOutputDrain    // alternate function, open drain
	AnalogInput
	AnalogOutput
	PinModeNone // sentinel, encodes as 0xFF

	numModes
)

// ModeCodeNone is the wire code of PinModeNone. No real mode may use it.
const ModeCodeNone uint8 = 0xFF

var modeTable = [numModes]struct {
	code uint8
	name string
}{
	Input:            {0, "INPUT"},
	Output:           {1, "OUTPUT"},
	InputPullUp:      {2, "INPUT_PULLUP"},
	InputPullDown:    {3, "INPUT_PULLDOWN"},
	AFOutputPushPull: {4, "AF_OUTPUT_PUSHPULL"},
	AFOutputDrain:    {5, "AF_OUTPUT_DRAIN"},
	AnalogInput:      {6, "AN_INPUT"},
	AnalogOutput:     {7, "AN_OUTPUT"},
	PinModeNone:      {ModeCodeNone, "PIN_MODE_NONE"},
}

// Code returns the mode code passed to the HAL.
// Values outside the table encode as ModeCodeNone.
func (m PinMode) Code() uint8 {
	if m >= numModes {
		return ModeCodeNone
	}
	return modeTable[m].code
}

func (m PinMode) String() string {
	if m >= numModes {
		return "MODE(" + utoa(uint32(m)) + ")"
	}
	return modeTable[m].name
}

// ModeFromCode returns the mode encoded as code
func ModeFromCode(code uint8) (PinMode, bool) {
	for m := PinMode(0); m < numModes; m++ {
		if modeTable[m].code == code {
			return m, true
		}
	}
	return 0, false
}

// AllModes lists every defined mode, sentinel last
func AllModes() []PinMode {
	modes := make([]PinMode, 0, numModes)
	for m := PinMode(0); m < numModes; m++ {
		modes = append(modes, m)
	}
	return modes
}

// LogicLevel is a digital pin level
type LogicLevel uint8

// Logic levels
const (
	Low LogicLevel = iota
	High

	numLevels
)

var levelTable = [numLevels]struct {
	code uint8
	name string
}{
	Low:  {0, "LOW"},
	High: {1, "HIGH"},
}

// LevelCodeNone is the code of a value outside the level table
const LevelCodeNone uint8 = 0xFF

// Code returns the level code passed to the HAL (0 = low, 1 = high)
func (l LogicLevel) Code() uint8 {
	if l >= numLevels {
		return LevelCodeNone
	}
	return levelTable[l].code
}

func (l LogicLevel) String() string {
	if l >= numLevels {
		return "LEVEL(" + utoa(uint32(l)) + ")"
	}
	return levelTable[l].name
}

// LevelFromCode returns the level encoded as code
func LevelFromCode(code uint8) (LogicLevel, bool) {
	for l := LogicLevel(0); l < numLevels; l++ {
		if levelTable[l].code == code {
			return l, true
		}
	}
	return 0, false
}

// AllLevels lists both logic levels
func AllLevels() []LogicLevel {
	return []LogicLevel{Low, High}
}
