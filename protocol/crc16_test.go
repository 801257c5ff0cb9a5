package protocol

import "testing"

func TestCRC16(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint16
	}{
		{
			data:     []byte{},
			expected: 0xFFFF,
		},
		{
			// Header of an empty frame
			data:     []byte{5, MessageDest},
			expected: 0x9E81,
		},
		{
			// Header and payload of set_pin_mode(7, 1)
			data:     []byte{8, MessageDest, OpSetPinMode, 7, 1},
			expected: 0xAF54,
		},
	}

	for i, tc := range testCases {
		if result := CRC16(tc.data); result != tc.expected {
			t.Errorf("Test case %d: CRC16(%v) = 0x%04X, expected 0x%04X", i, tc.data, result, tc.expected)
		}
	}
}

func TestCRC16Consistency(t *testing.T) {
	// Test that same input produces same output
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	crc1 := CRC16(data)
	crc2 := CRC16(data)

	if crc1 != crc2 {
		t.Errorf("CRC16 not consistent: first=%04X, second=%04X", crc1, crc2)
	}
}

func TestCRC16Different(t *testing.T) {
	// Test that different inputs produce different outputs
	data1 := []byte{0x01, 0x02, 0x03}
	data2 := []byte{0x01, 0x02, 0x04}

	crc1 := CRC16(data1)
	crc2 := CRC16(data2)

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
