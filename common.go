// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"encoding/binary"
	"math"
)

// maxVarIntPayload is the maximum payload size for a variable length
// integer.
const maxVarIntPayload = 9

// ReadVarInt decodes a variable length integer from the front of buf and
// returns it as a uint64 along with the number of bytes consumed.
//
// The first byte is the discriminant: values up to 0xfc encode themselves
// directly in a single byte, while 0xfd, 0xfe, and 0xff announce a
// little-endian uint16, uint32, or uint64 in the bytes that follow.  When
// buf ends before the announced width can be read, ErrInsufficientBytes
// is returned.
//
// Note that non-canonical encodings, where a value is carried in a wider
// tier than the minimal one AppendVarInt would choose, are intentionally
// accepted without error.  This mirrors the historical behavior of
// deployed decoders.  Callers that require canonical encodings must
// re-encode the returned value and compare the widths themselves.
func ReadVarInt(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrInsufficientBytes
	}

	discriminant := buf[0]
	switch discriminant {
	case 0xff:
		if len(buf) < 9 {
			return 0, 0, ErrInsufficientBytes
		}
		return binary.LittleEndian.Uint64(buf[1:9]), 9, nil

	case 0xfe:
		if len(buf) < 5 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(binary.LittleEndian.Uint32(buf[1:5])), 5, nil

	case 0xfd:
		if len(buf) < 3 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(binary.LittleEndian.Uint16(buf[1:3])), 3, nil

	default:
		return uint64(discriminant), 1, nil
	}
}

// AppendVarInt appends the canonical variable length encoding of val to b
// and returns the extended buffer.  The encoding is always the minimal
// width for the value, so it is a pure function of val.  Every uint64 is
// representable and there is no error path.
func AppendVarInt(b []byte, val uint64) []byte {
	if val > math.MaxUint32 {
		b = append(b, 0xff)
		return binary.LittleEndian.AppendUint64(b, val)
	}
	if val > math.MaxUint16 {
		b = append(b, 0xfe)
		return binary.LittleEndian.AppendUint32(b, uint32(val))
	}
	if val >= 0xfd {
		b = append(b, 0xfd)
		return binary.LittleEndian.AppendUint16(b, uint16(val))
	}
	return append(b, uint8(val))
}

// VarIntSerializeSize returns the number of bytes it would take to
// serialize val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return maxVarIntPayload
}
