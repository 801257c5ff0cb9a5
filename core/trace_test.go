package core

import (
	"reflect"
	"testing"
)

func TestCallString(t *testing.T) {
	testCases := []struct {
		call     Call
		expected string
	}{
		{Call{Op: OpSetPinMode, Pin: 7, Value: 1}, "set_pin_mode(7, 1)"},
		{Call{Op: OpWritePin, Pin: 12, Value: 0}, "write_pin(12, 0)"},
		{Call{Op: OpBusyWait, Value: 500}, "busy_wait(500)"},
		{Call{Op: OpSetPinMode, Pin: -1, Value: 255}, "set_pin_mode(-1, 255)"},
		{Call{Op: Op(9)}, "op(9)(0, 0)"},
	}

	for _, tc := range testCases {
		if got := tc.call.String(); got != tc.expected {
			t.Errorf("Expected %q, got %q", tc.expected, got)
		}
	}
}

func TestTraceHALForwardsAndRecords(t *testing.T) {
	rec := NewRecorder()
	var streamed []Call
	tr := NewTraceHAL(rec, func(c Call) { streamed = append(streamed, c) })

	b := NewBoard(tr)
	b.Setup()
	b.Loop()

	expected := append(SetupSequence(), BlinkCycle()...)
	if got := rec.Calls(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Forwarded calls: expected %v, got %v", expected, got)
	}
	if !reflect.DeepEqual(streamed, expected) {
		t.Errorf("Streamed calls: expected %v, got %v", expected, streamed)
	}
	if !reflect.DeepEqual(tr.Recent(), expected) {
		t.Errorf("Ring: expected %v, got %v", expected, tr.Recent())
	}
	if tr.Total() != uint32(len(expected)) {
		t.Errorf("Expected total %d, got %d", len(expected), tr.Total())
	}
}

func TestTraceHALRingWraps(t *testing.T) {
	tr := NewTraceHAL(NewRecorder(), nil)
	for i := 0; i < TraceRingSize+5; i++ {
		tr.BusyWait(uint32(i))
	}

	recent := tr.Recent()
	if len(recent) != TraceRingSize {
		t.Fatalf("Expected %d buffered calls, got %d", TraceRingSize, len(recent))
	}
	if recent[0].Value != 5 {
		t.Errorf("Expected oldest wait 5, got %d", recent[0].Value)
	}
	if last := recent[len(recent)-1].Value; last != TraceRingSize+4 {
		t.Errorf("Expected newest wait %d, got %d", TraceRingSize+4, last)
	}
}

func TestTraceHALDump(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	tr := NewTraceHAL(NewRecorder(), nil)
	NewBoard(tr).Setup()
	tr.Dump()

	expected := []string{
		"[TRACE] === HAL Trace Dump ===",
		"[TRACE] Total calls: 1",
		"[TRACE] set_pin_mode(7, 1)",
		"[TRACE] === End Dump ===",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.WritePin(1, 1)
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Expected empty recorder, got %d calls", rec.Len())
	}
}

func TestTraceHALDumpWhileRunning(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	tr := NewTraceHAL(NewRecorder(), nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		b := NewBoard(tr)
		b.Setup()
		for i := 0; i < 100; i++ {
			b.Loop()
		}
	}()

	for i := 0; i < 10; i++ {
		if n := len(tr.Recent()); n > TraceRingSize {
			t.Fatalf("Ring returned %d calls", n)
		}
	}
	<-done

	tr.Dump()
	if tr.Total() != 401 {
		t.Errorf("Expected 401 calls, got %d", tr.Total())
	}
	if len(lines) != TraceRingSize+3 {
		t.Errorf("Expected %d dump lines, got %d", TraceRingSize+3, len(lines))
	}
}
