// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// mainNetGenesisHash is the hash of the first block in the block chain for
// the main network (genesis block).  It is used as a convenient realistic
// value in several tests.
var mainNetGenesisHash = Hash{
	0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
	0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
	0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
	0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// TestHash tests the Hash API.
func TestHash(t *testing.T) {
	hashStr := "6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d61900" +
		"00000000"
	hash, err := NewHashFromStr(hashStr)
	if err != nil {
		t.Errorf("NewHashFromStr: %v", err)
	}
	if !hash.IsEqual(&mainNetGenesisHash) {
		t.Errorf("NewHashFromStr: hash mismatch - got %v, want %v",
			hash, mainNetGenesisHash)
	}

	// The string form must round-trip to the identical byte array.
	if s := hash.String(); s != hashStr {
		t.Errorf("String: wrong hash string - got %v, want %v",
			s, hashStr)
	}

	// Hash from byte slice.
	hash2, err := NewHash(hash.CloneBytes())
	if err != nil {
		t.Errorf("NewHash: %v", err)
	}
	if !hash2.IsEqual(hash) {
		t.Errorf("NewHash: hash mismatch - got %v, want %v",
			hash2, hash)
	}

	// Ensure the cloned bytes are an independent copy.
	cloned := hash2.CloneBytes()
	cloned[0] ^= 0xff
	if !hash2.IsEqual(hash) {
		t.Errorf("CloneBytes: modifying the clone changed the hash")
	}

	// Set to a different hash and ensure equality no longer holds.
	var altHash Hash
	if err := altHash.SetBytes(bytes.Repeat([]byte{0x2a}, HashSize)); err != nil {
		t.Errorf("SetBytes: %v", err)
	}
	if hash.IsEqual(&altHash) {
		t.Errorf("IsEqual: hashes should not match - %v vs %v",
			hash, altHash)
	}

	// Invalid size through SetBytes.
	if err := altHash.SetBytes([]byte{0x00}); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("SetBytes: wrong error for short slice - got %v, "+
			"want %v", err, ErrInvalidFormat)
	}

	// Invalid size through NewHash.
	if _, err := NewHash(make([]byte, HashSize+1)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewHash: wrong error for long slice - got %v, "+
			"want %v", err, ErrInvalidFormat)
	}
}

// TestNewHashFromStr executes tests against the NewHashFromStr function.
func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		in   string
		want Hash
		err  error
	}{
		// All zeroes.
		{
			"00000000000000000000000000000000" +
				"00000000000000000000000000000000",
			Hash{},
			nil,
		},
		// Genesis hash.
		{
			"6fe28c0ab6f1b372c1a6a246ae63f74f" +
				"931e8365e15a089c68d6190000000000",
			mainNetGenesisHash,
			nil,
		},
		// Uppercase hex decodes to the same bytes.
		{
			"6FE28C0AB6F1B372C1A6A246AE63F74F" +
				"931E8365E15A089C68D6190000000000",
			mainNetGenesisHash,
			nil,
		},
		// Empty string.
		{"", Hash{}, ErrInvalidFormat},
		// Single digit, would zero-pad if padding were allowed.
		{"1", Hash{}, ErrInvalidFormat},
		// 63 characters, one short of a full hash.
		{
			"0000000000000000000000000000000" +
				"00000000000000000000000000000001",
			Hash{},
			ErrInvalidFormat,
		},
		// 65 characters, one over a full hash.
		{
			"000000000000000000000000000000000" +
				"00000000000000000000000000000001",
			Hash{},
			ErrInvalidFormat,
		},
		// Correct length but a non-hex character.
		{
			"0000000000000000000000000000000g" +
				"00000000000000000000000000000000",
			Hash{},
			ErrInvalidFormat,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result, err := NewHashFromStr(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("NewHashFromStr #%d wrong error got: %v, "+
				"want: %v", i, err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if !test.want.IsEqual(result) {
			t.Errorf("NewHashFromStr #%d got: %v want: %v",
				i, result, test.want)
			continue
		}
	}
}

// TestHashJSONMarshal ensures hashes marshal to and from JSON as their hex
// string form with the same strictness as NewHashFromStr.
func TestHashJSONMarshal(t *testing.T) {
	marshaled, err := json.Marshal(mainNetGenesisHash)
	require.NoError(t, err)
	require.Equal(
		t, `"6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d619`+
			`0000000000"`,
		string(marshaled),
	)

	var unmarshaled Hash
	require.NoError(t, json.Unmarshal(marshaled, &unmarshaled))
	require.Equal(t, mainNetGenesisHash, unmarshaled)

	// Wrong length and non-hex content are rejected.
	err = json.Unmarshal([]byte(`"abcdef"`), &unmarshaled)
	require.ErrorIs(t, err, ErrInvalidFormat)
	err = json.Unmarshal(
		[]byte(`"zz000000000000000000000000000000000000000000000000`+
			`00000000000000"`),
		&unmarshaled,
	)
	require.ErrorIs(t, err, ErrInvalidFormat)

	// Non-string JSON values fail before hash parsing.
	require.Error(t, json.Unmarshal([]byte(`123`), &unmarshaled))
}

// TestDoubleHash verifies the double sha256 helpers against independently
// computed vectors.
func TestDoubleHash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"",
			"5df6e0e2761359d30a8275058e299fcc" +
				"0381534545f55cf43e41983f5d4c9456",
		},
		{
			"abc",
			"4f8b42c22dd3729b519ba6f68d2da7cc" +
				"5b2d606d05daed5ad5128cc03e6c6358",
		},
		{
			"hello world",
			"bc62d4b80d9e36da29c16c5d4d9f1173" +
				"1f36052c72401a76c23c0fb5a9b74423",
		},
	}

	for i, test := range tests {
		want, err := NewHashFromStr(test.want)
		if err != nil {
			t.Fatalf("NewHashFromStr #%d: %v", i, err)
		}

		if got := DoubleHashH([]byte(test.in)); !want.IsEqual(&got) {
			t.Errorf("DoubleHashH #%d got: %v want: %v",
				i, got, want)
		}
		if got := DoubleHashB([]byte(test.in)); !bytes.Equal(got, want[:]) {
			t.Errorf("DoubleHashB #%d got: %x want: %v",
				i, got, want)
		}
	}
}
