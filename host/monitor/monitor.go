// Package monitor follows the HAL trace a running firmware streams over
// serial and checks it against the blink lifecycle.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"blinky/core"
	"blinky/protocol"

	"github.com/sirupsen/logrus"
)

// Monitor reads trace frames from Port and verifies them
type Monitor struct {
	Port   io.Reader
	Logger *logrus.Logger

	// Cycles stops Run after this many verified cycles (0 = never)
	Cycles int
	// FromBoot requires the stream to start with the setup call
	FromBoot bool
	// StopOnEOF ends Run at io.EOF. Serial ports report read timeouts as
	// io.EOF, so live monitoring leaves this off.
	StopOnEOF bool

	verifier *Verifier
}

// Run reads until ctx is done, the cycle limit is reached, the sequence
// breaks or the port fails. ctx is checked between reads, so a port
// without a read timeout can delay cancellation.
func (m *Monitor) Run(ctx context.Context) error {
	if m.Logger == nil {
		m.Logger = logrus.New()
	}
	m.verifier = NewVerifier(m.FromBoot)
	reader := protocol.NewFrameReader(m.Port)

	m.Logger.WithFields(logrus.Fields{
		"pin":       core.LEDPin.String(),
		"interval":  core.BlinkIntervalMs,
		"from_boot": m.FromBoot,
		"protocol":  protocol.Version,
	}).Info("monitoring blink trace")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		ev, err := reader.Next()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if m.StopOnEOF {
				return nil
			}
			continue
		case protocol.IsFrameError(err):
			m.Logger.WithError(err).Warn("trace frames lost, realigning")
			m.verifier.Lost()
			continue
		default:
			return fmt.Errorf("read trace: %w", err)
		}

		call := core.Call{Op: core.Op(ev.Op), Pin: ev.Pin, Value: ev.Value}
		m.Logger.WithField("call", call.String()).Debug("hal call")

		before := m.verifier.Cycles()
		if err := m.verifier.Observe(call); err != nil {
			m.Logger.WithError(err).Error("blink sequence broken")
			return err
		}
		if cycles := m.verifier.Cycles(); cycles != before {
			m.Logger.WithField("cycles", cycles).Info("blink cycle verified")
			if m.Cycles > 0 && cycles >= m.Cycles {
				return nil
			}
		}
	}
}

// VerifiedCycles returns the number of verified cycles of the last Run
func (m *Monitor) VerifiedCycles() int {
	if m.verifier == nil {
		return 0
	}
	return m.verifier.Cycles()
}
