package monitor

import (
	"fmt"

	"blinky/core"
)

// SequenceError reports the first call that broke the blink sequence
type SequenceError struct {
	Index    int // position in the observed stream
	Expected core.Call
	Got      core.Call
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("call %d: expected %s, got %s", e.Index, e.Expected, e.Got)
}

type phase int

const (
	phaseSetup  phase = iota // waiting for the boot-time setup call
	phaseSearch              // waiting for the start of a blink cycle
	phaseCycle               // inside the blink cycle
)

// Verifier checks a stream of HAL calls against the firmware lifecycle:
// one setup call, then the blink cycle repeated forever.
type Verifier struct {
	phase  phase
	pos    int // index into the blink cycle
	calls  int
	cycles int
	setup  []core.Call
	cycle  []core.Call
}

// NewVerifier creates a Verifier. With fromBoot the stream must start with
// the setup call; otherwise calls are skipped until a cycle starts.
func NewVerifier(fromBoot bool) *Verifier {
	v := &Verifier{
		setup: core.SetupSequence(),
		cycle: core.BlinkCycle(),
	}
	if !fromBoot {
		v.phase = phaseSearch
	}
	return v
}

// Observe feeds one call. It returns a *SequenceError on the first
// deviation; the Verifier is not usable afterwards.
func (v *Verifier) Observe(c core.Call) error {
	idx := v.calls
	v.calls++

	switch v.phase {
	case phaseSetup:
		if c != v.setup[0] {
			return &SequenceError{Index: idx, Expected: v.setup[0], Got: c}
		}
		v.phase = phaseCycle
		v.pos = 0
		return nil

	case phaseSearch:
		if c != v.cycle[0] {
			return nil
		}
		v.phase = phaseCycle
		v.pos = 0
	}

	want := v.cycle[v.pos]
	if c != want {
		return &SequenceError{Index: idx, Expected: want, Got: c}
	}
	v.pos++
	if v.pos == len(v.cycle) {
		v.pos = 0
		v.cycles++
	}
	return nil
}

// Lost tells the Verifier calls went missing. It realigns on the next
// cycle start, discarding the partial cycle. Before the setup call has
// been seen nothing is realigned: the next call must still be setup.
func (v *Verifier) Lost() {
	if v.phase == phaseSetup {
		return
	}
	v.phase = phaseSearch
	v.pos = 0
}

// Cycles returns the number of complete blink cycles verified
func (v *Verifier) Cycles() int {
	return v.cycles
}

// Calls returns the number of calls observed
func (v *Verifier) Calls() int {
	return v.calls
}
