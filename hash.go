// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashSize is the size of the array used to store transaction hashes.
const HashSize = 32

// HashStringSize is the exact length of the hex string form of a Hash.
const HashStringSize = HashSize * 2

// Hash is the 32-byte identifier of a transaction.  Its string form is
// the plain lowercase hex of the bytes in order, with no byte reversal,
// so the text form always round-trips to the identical byte array.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the bytes.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a
// byte slice.
//
// NOTE: It is generally cheaper to just slice the hash directly thereby
// reusing the same bytes rather than calling this method.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash.  ErrInvalidFormat is
// returned if the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return ErrInvalidFormat
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	return *hash == *target
}

// MarshalJSON encodes the hash as its JSON string form.
func (hash Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(hash.String())
}

// UnmarshalJSON decodes a hash from its JSON string form with the same
// strictness as NewHashFromStr.
func (hash *Hash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, err := NewHashFromStr(s)
	if err != nil {
		return err
	}
	*hash = *decoded

	return nil
}

// NewHash returns a new Hash from a byte slice.  ErrInvalidFormat is
// returned if the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr creates a Hash from a hash string.  The string must be
// exactly HashStringSize hex characters decoding to HashSize bytes, in
// the same byte order as the in-memory array.  Anything else, including
// a short string that would decode cleanly, is rejected with
// ErrInvalidFormat rather than padded or truncated.
func NewHashFromStr(hash string) (*Hash, error) {
	if len(hash) != HashStringSize {
		return nil, ErrInvalidFormat
	}

	buf, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	var ret Hash
	copy(ret[:], buf)
	return &ret, nil
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting
// bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting
// bytes as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}
