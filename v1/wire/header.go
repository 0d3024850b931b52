package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderLen is the fixed length of the framing header in bytes.
	HeaderLen = 5

	// MagicByte is the required value of the first header byte.
	MagicByte = 0x00
)

// ErrMalformedHeader is the sentinel wrapped by all header parse failures.
// Use errors.Is to detect it regardless of the specific cause.
var ErrMalformedHeader = errors.New("wire: malformed framing header")

// ParseHeader extracts the schema identifier from the framing header.
// Format: [magic_byte][schema_id]
// - magic_byte: 0x0 (1 byte)
// - schema_id: 4 bytes (big-endian)
//
// It fails if the input is shorter than the 5-byte header or if the magic
// byte is not zero. A nonzero magic byte signals corruption or an encoding
// version this library does not speak; no further version negotiation is
// attempted.
func ParseHeader(data []byte) (uint32, error) {
	if len(data) < HeaderLen {
		return 0, fmt.Errorf("%w: too short, expected at least %d bytes, got %d", ErrMalformedHeader, HeaderLen, len(data))
	}

	if data[0] != MagicByte {
		return 0, fmt.Errorf("%w: bad magic byte, expected 0x0, got 0x%x", ErrMalformedHeader, data[0])
	}

	return binary.BigEndian.Uint32(data[1:HeaderLen]), nil
}

// SplitPayload parses the framing header and returns the schema identifier
// together with the payload that follows the 5-byte header.
func SplitPayload(data []byte) (uint32, []byte, error) {
	schemaID, err := ParseHeader(data)
	if err != nil {
		return 0, nil, err
	}

	return schemaID, data[HeaderLen:], nil
}

// EncodeHeader builds a framing header for a schema identifier.
// This is the producer-side counterpart of ParseHeader and is mostly useful
// for constructing test fixtures and republishing packets.
func EncodeHeader(schemaID uint32) []byte {
	buf := make([]byte, HeaderLen)
	buf[0] = MagicByte
	binary.BigEndian.PutUint32(buf[1:], schemaID)
	return buf
}
