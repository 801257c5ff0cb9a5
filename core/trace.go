package core

import "sync"

// Op identifies a HAL primitive
type Op uint8

// HAL primitives. The values are also the op codes on the trace wire.
const (
	OpSetPinMode Op = 1
	OpWritePin   Op = 2
	OpBusyWait   Op = 3
)

func (o Op) String() string {
	switch o {
	case OpSetPinMode:
		return "set_pin_mode"
	case OpWritePin:
		return "write_pin"
	case OpBusyWait:
		return "busy_wait"
	default:
		return "op(" + utoa(uint32(o)) + ")"
	}
}

// Call is one observed HAL call.
// Value is the mode code, the level code or the wait in milliseconds.
// Pin is unused for OpBusyWait.
type Call struct {
	Op    Op
	Pin   int16
	Value uint32
}

func (c Call) String() string {
	if c.Op == OpBusyWait {
		return c.Op.String() + "(" + utoa(c.Value) + ")"
	}
	return c.Op.String() + "(" + itoa(int(c.Pin)) + ", " + utoa(c.Value) + ")"
}

// SetupSequence is the HAL trace of one Setup call
func SetupSequence() []Call {
	return []Call{
		{Op: OpSetPinMode, Pin: LEDPin.Wire(), Value: uint32(Output.Code())},
	}
}

// BlinkCycle is the HAL trace of one Loop call
func BlinkCycle() []Call {
	return []Call{
		{Op: OpWritePin, Pin: LEDPin.Wire(), Value: uint32(High.Code())},
		{Op: OpBusyWait, Value: BlinkIntervalMs},
		{Op: OpWritePin, Pin: LEDPin.Wire(), Value: uint32(Low.Code())},
		{Op: OpBusyWait, Value: BlinkIntervalMs},
	}
}

// Recorder is a HAL that only records the calls it receives.
// It returns from BusyWait immediately.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetPinMode(pin int16, mode uint8) {
	r.record(Call{Op: OpSetPinMode, Pin: pin, Value: uint32(mode)})
}

func (r *Recorder) WritePin(pin int16, level uint8) {
	r.record(Call{Op: OpWritePin, Pin: pin, Value: uint32(level)})
}

func (r *Recorder) BusyWait(ms uint32) {
	r.record(Call{Op: OpBusyWait, Value: ms})
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of the recorded calls, oldest first
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = r.calls[:0]
	r.mu.Unlock()
}

// CallSink receives every call passing through a TraceHAL
type CallSink func(Call)

const (
	TraceRingSize = 32 // Keep last 32 calls for post-mortem
)

// TraceHAL records every call in a ring buffer, hands it to an optional
// sink and then forwards it to the wrapped HAL.
type TraceHAL struct {
	next HAL
	sink CallSink

	mu    sync.Mutex // guards the ring; Dump may run on another goroutine
	ring  [TraceRingSize]Call
	head  uint8 // Next write position
	total uint32
}

// NewTraceHAL wraps next. sink may be nil.
func NewTraceHAL(next HAL, sink CallSink) *TraceHAL {
	return &TraceHAL{next: next, sink: sink}
}

func (t *TraceHAL) SetPinMode(pin int16, mode uint8) {
	t.trace(Call{Op: OpSetPinMode, Pin: pin, Value: uint32(mode)})
	t.next.SetPinMode(pin, mode)
}

func (t *TraceHAL) WritePin(pin int16, level uint8) {
	t.trace(Call{Op: OpWritePin, Pin: pin, Value: uint32(level)})
	t.next.WritePin(pin, level)
}

func (t *TraceHAL) BusyWait(ms uint32) {
	t.trace(Call{Op: OpBusyWait, Value: ms})
	t.next.BusyWait(ms)
}

func (t *TraceHAL) trace(c Call) {
	t.mu.Lock()
	t.ring[t.head] = c
	t.head = (t.head + 1) % TraceRingSize
	t.total++
	t.mu.Unlock()
	if t.sink != nil {
		t.sink(c)
	}
}

// Total returns the number of calls seen since creation
func (t *TraceHAL) Total() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Recent returns the buffered calls, oldest first
func (t *TraceHAL) Recent() []Call {
	recent, _ := t.snapshot()
	return recent
}

func (t *TraceHAL) snapshot() ([]Call, uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := int(t.total)
	if n > TraceRingSize {
		n = TraceRingSize
	}
	out := make([]Call, 0, n)
	start := (int(t.head) - n + TraceRingSize) % TraceRingSize
	for i := 0; i < n; i++ {
		out = append(out, t.ring[(start+i)%TraceRingSize])
	}
	return out, t.total
}

// Dump writes the ring buffer through the debug writer
func (t *TraceHAL) Dump() {
	if debugPrintln == nil {
		return
	}

	recent, total := t.snapshot()
	debugPrintln("[TRACE] === HAL Trace Dump ===")
	debugPrintln("[TRACE] Total calls: " + utoa(total))
	for _, c := range recent {
		debugPrintln("[TRACE] " + c.String())
	}
	debugPrintln("[TRACE] === End Dump ===")
}
