// Package protocol implements the HAL trace wire format.
//
// The firmware streams every HAL call to the host as VLQ-encoded events
// packed into CRC-checked frames:
//
//	len seq payload crc_hi crc_lo 0x7E
//
// len is the total frame length, seq carries MessageDest in the high
// nibble and a rolling counter in the low nibble.
package protocol

// Version represents the trace protocol version
const Version = "1"

// Frame layout
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePayloadMax  = MessageLengthMax - MessageLengthMin
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10

	// Message sequence masks
	MessageSeqMask = 0x0F
)

// MessageMax is the scratch buffer size used for encoding
const MessageMax = 512
