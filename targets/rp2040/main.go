//go:build rp2040 || rp2350

package main

import (
	"machine"

	"blinky/core"
	"blinky/protocol"
)

var (
	// Trace stream to the host monitor over USB CDC
	traceWriter *protocol.FrameWriter

	// Frames that failed to write
	traceErrors uint32
)

// streamCall queues a HAL call for the host. Frames are flushed before
// every wait so the host sees each step as it happens.
func streamCall(c core.Call) {
	ev := protocol.Event{Op: uint8(c.Op), Pin: c.Pin, Value: c.Value}
	if err := traceWriter.Write(ev); err != nil {
		traceErrors++
	}
	if c.Op == core.OpBusyWait {
		if err := traceWriter.Flush(); err != nil {
			traceErrors++
		}
	}
}

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitDebugUART()
	core.SetDebugWriter(DebugPrintln)
	core.SetDebugEnabled(debugEnabled)

	traceWriter = protocol.NewFrameWriter(machine.Serial)
	core.SetHAL(core.NewTraceHAL(NewRPHAL(), streamCall))

	// Setup once, then Loop forever
	core.Run()
}
