package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrFrameLength = errors.New("frame length out of range")
	ErrBadHeader   = errors.New("frame destination mismatch")
	ErrBadSync     = errors.New("frame missing trailing sync")
	ErrBadCRC      = errors.New("frame CRC mismatch")
	ErrSequence    = errors.New("frame sequence gap")
)

// FrameWriter packs events into frames
type FrameWriter struct {
	w     io.Writer
	seq   uint8
	out   *ScratchOutput // frame being built
	ev    *ScratchOutput // scratch for one encoded event
	count int            // events in the pending frame
}

// NewFrameWriter creates a FrameWriter writing frames to w
func NewFrameWriter(w io.Writer) *FrameWriter {
	fw := &FrameWriter{
		w:   w,
		out: NewScratchOutput(),
		ev:  NewScratchOutput(),
	}
	fw.begin()
	return fw
}

// begin writes the header placeholder (length and sequence)
func (fw *FrameWriter) begin() {
	fw.out.Reset()
	fw.out.Output([]byte{0, MessageDest | (fw.seq & MessageSeqMask)})
	fw.count = 0
}

// Write queues ev, flushing the pending frame first if ev would not fit
func (fw *FrameWriter) Write(ev Event) error {
	fw.ev.Reset()
	EncodeEvent(fw.ev, ev)
	encoded := fw.ev.Result()

	payload := fw.out.CurPosition() - MessageHeaderSize
	if payload+len(encoded) > MessagePayloadMax {
		if err := fw.Flush(); err != nil {
			return err
		}
	}

	fw.out.Output(encoded)
	fw.count++
	return nil
}

// Pending returns the number of queued events not yet flushed
func (fw *FrameWriter) Pending() int {
	return fw.count
}

// Flush writes the pending frame, if any
func (fw *FrameWriter) Flush() error {
	if fw.count == 0 {
		return nil
	}

	// Update length field
	fw.out.Update(MessagePositionLen, uint8(fw.out.CurPosition()+MessageTrailerSize))

	// Calculate and write CRC
	crc := CRC16(fw.out.DataSince(0))
	fw.out.Output([]byte{
		uint8((crc & 0xFF00) >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})

	_, err := fw.w.Write(fw.out.Result())
	fw.seq = (fw.seq + 1) & MessageSeqMask
	fw.begin()
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// FrameReader decodes events from a byte stream of frames.
// Corrupt frames are dropped and reported, and reading can continue.
type FrameReader struct {
	r       io.Reader
	fifo    *FifoBuffer
	chunk   [MessageLengthMax]byte
	synced  bool
	haveSeq bool
	nextSeq uint8
	pending []Event
}

// NewFrameReader creates a FrameReader reading from r
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{
		r:    r,
		fifo: NewFifoBuffer(4 * MessageLengthMax),
		// Start synchronized, like the firmware side
		synced: true,
	}
}

// Next returns the next event.
// ErrFrameLength, ErrBadHeader, ErrBadSync, ErrBadCRC, ErrUnknownOp and
// ErrInvalidVLQ mean a frame was dropped. ErrSequence means frames were
// lost before the current one; its events are still returned by later
// calls. Read errors from the underlying reader are returned as is and
// are not sticky.
func (fr *FrameReader) Next() (Event, error) {
	for len(fr.pending) == 0 {
		payload, err := fr.nextFrame()
		if payload != nil {
			events, derr := DecodeEvents(payload)
			if derr != nil {
				// Keep a sequence gap visible alongside the bad payload
				return Event{}, errors.Join(err, derr)
			}
			fr.pending = events
			if err != nil {
				return Event{}, err
			}
			continue
		}
		if err != nil {
			return Event{}, err
		}

		// Never read more than the FIFO can hold
		n, rerr := fr.r.Read(fr.chunk[:min(len(fr.chunk), fr.fifo.Free())])
		if n > 0 {
			fr.fifo.Write(fr.chunk[:n])
		}
		if rerr != nil && n == 0 {
			return Event{}, rerr
		}
	}

	ev := fr.pending[0]
	fr.pending = fr.pending[1:]
	return ev, nil
}

// nextFrame extracts one valid frame payload from the buffered bytes.
// It returns nil, nil when more input is needed.
func (fr *FrameReader) nextFrame() ([]byte, error) {
	for {
		if fr.fifo.IsEmpty() {
			return nil, nil
		}
		data := fr.fifo.Data()

		if !fr.synced {
			// Skip garbage up to and including the next sync byte
			syncPos := bytes.IndexByte(data, MessageValueSync)
			if syncPos < 0 {
				fr.fifo.Pop(len(data))
				return nil, nil
			}
			fr.fifo.Pop(syncPos + 1)
			fr.synced = true
			continue
		}

		// Skip leading sync bytes
		if data[0] == MessageValueSync {
			fr.fifo.Pop(1)
			continue
		}

		// Need at least minimum message length
		if len(data) < MessageLengthMin {
			return nil, nil
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			fr.synced = false
			return nil, fmt.Errorf("%w: %d", ErrFrameLength, msgLen)
		}

		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			fr.synced = false
			return nil, fmt.Errorf("%w: 0x%02X", ErrBadHeader, seq)
		}

		// Wait for full message
		if len(data) < msgLen {
			return nil, nil
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			fr.synced = false
			return nil, ErrBadSync
		}

		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if actual := CRC16(data[:msgLen-MessageTrailerSize]); frameCRC != actual {
			fr.synced = false
			return nil, fmt.Errorf("%w: got 0x%04X, want 0x%04X", ErrBadCRC, frameCRC, actual)
		}

		payload := make([]byte, msgLen-MessageLengthMin)
		copy(payload, data[MessageHeaderSize:msgLen-MessageTrailerSize])
		fr.fifo.Pop(msgLen)

		var err error
		n := seq & MessageSeqMask
		if fr.haveSeq && n != fr.nextSeq {
			err = fmt.Errorf("%w: expected %d, got %d", ErrSequence, fr.nextSeq, n)
		}
		fr.nextSeq = (n + 1) & MessageSeqMask
		fr.haveSeq = true
		return payload, err
	}
}

// IsFrameError reports whether err means a frame was dropped or lost,
// as opposed to a failure of the underlying reader
func IsFrameError(err error) bool {
	for _, target := range []error{
		ErrFrameLength, ErrBadHeader, ErrBadSync, ErrBadCRC, ErrSequence,
		ErrUnknownOp, ErrInvalidVLQ, ErrBufferTooSmall,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
