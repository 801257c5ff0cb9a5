package core

import (
	"reflect"
	"testing"
)

func TestBoardWrappers(t *testing.T) {
	rec := NewRecorder()
	b := NewBoard(rec)

	b.ConfigurePin(A1, InputPullDown)
	b.WritePin(D3, High)
	b.Delay(42)

	expected := []Call{
		{Op: OpSetPinMode, Pin: 11, Value: 3},
		{Op: OpWritePin, Pin: 3, Value: 1},
		{Op: OpBusyWait, Value: 42},
	}
	if got := rec.Calls(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSetupConfiguresLED(t *testing.T) {
	rec := NewRecorder()
	NewBoard(rec).Setup()

	calls := rec.Calls()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 HAL call, got %d: %v", len(calls), calls)
	}
	want := Call{Op: OpSetPinMode, Pin: 7, Value: uint32(Output.Code())}
	if calls[0] != want {
		t.Errorf("Expected %v, got %v", want, calls[0])
	}
}

func TestLoopBlinkCycle(t *testing.T) {
	rec := NewRecorder()
	NewBoard(rec).Loop()

	expected := []Call{
		{Op: OpWritePin, Pin: 7, Value: 1},
		{Op: OpBusyWait, Value: 500},
		{Op: OpWritePin, Pin: 7, Value: 0},
		{Op: OpBusyWait, Value: 500},
	}
	if got := rec.Calls(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if !reflect.DeepEqual(BlinkCycle(), expected) {
		t.Errorf("BlinkCycle() = %v, expected %v", BlinkCycle(), expected)
	}
}

func TestLoopRepeatsIdentically(t *testing.T) {
	for _, n := range []int{1, 2, 7, 50} {
		rec := NewRecorder()
		b := NewBoard(rec)
		for i := 0; i < n; i++ {
			b.Loop()
		}

		calls := rec.Calls()
		cycle := BlinkCycle()
		if len(calls) != n*len(cycle) {
			t.Fatalf("n=%d: expected %d calls, got %d", n, n*len(cycle), len(calls))
		}
		for i, c := range calls {
			if c != cycle[i%len(cycle)] {
				t.Errorf("n=%d: call %d is %v, expected %v", n, i, c, cycle[i%len(cycle)])
			}
		}
	}
}

func TestLoopIndependentOfHistory(t *testing.T) {
	rec := NewRecorder()
	b := NewBoard(rec)

	// Unrelated traffic before the loop must not change its output
	b.ConfigurePin(D0, InputPullUp)
	b.WritePin(D7, High)
	b.Delay(3)
	rec.Reset()

	b.Loop()
	if got := rec.Calls(); !reflect.DeepEqual(got, BlinkCycle()) {
		t.Errorf("Expected %v, got %v", BlinkCycle(), got)
	}
}

func TestSetupThenLoopScenario(t *testing.T) {
	rec := NewRecorder()
	SetHAL(rec)
	defer SetHAL(nil)

	Setup()
	Loop()

	var trace []string
	for _, c := range rec.Calls() {
		trace = append(trace, c.String())
	}
	expected := []string{
		"set_pin_mode(7, 1)",
		"write_pin(7, 1)",
		"busy_wait(500)",
		"write_pin(7, 0)",
		"busy_wait(500)",
	}
	if !reflect.DeepEqual(trace, expected) {
		t.Errorf("Expected trace %v, got %v", expected, trace)
	}
}

func TestSetupDebugOutput(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	defer func() {
		SetDebugWriter(func(string) {})
		SetDebugEnabled(false)
	}()

	rec := NewRecorder()
	SetHAL(rec)
	defer SetHAL(nil)

	Setup()

	if len(lines) != 1 || lines[0] != "[BLINK] setup D7 OUTPUT" {
		t.Errorf("Unexpected debug output: %v", lines)
	}
	if rec.Len() != 1 {
		t.Errorf("Debug output must not add HAL calls, got %d calls", rec.Len())
	}
}

func TestSetupQuietWhenDebugDisabled(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	SetDebugEnabled(false)

	SetHAL(NewRecorder())
	defer SetHAL(nil)

	Setup()

	if IsDebugEnabled() || len(lines) != 0 {
		t.Errorf("Expected no debug output, got %v", lines)
	}
}

func TestMustHALPanicsWhenMissing(t *testing.T) {
	SetHAL(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic without a registered HAL")
		}
	}()
	MustHAL()
}
