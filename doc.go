// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txwire implements the legacy bitcoin transaction wire encoding.

The package converts between in-memory transaction structures and the
exact byte layout used on the wire, and back again.  Every decode
function operates on a caller-supplied byte slice and returns, along
with the decoded value, the number of bytes it consumed from the front
of the slice so the caller can immediately resume parsing any data that
follows.  The encoding side is the exact inverse and never fails.

At the lowest level is the variable length integer (also known as a
CompactSize) used throughout the format to express counts and lengths.
On top of it sit the codecs for previous output references (OutPoint),
length-prefixed signature scripts, transaction inputs (TxIn), and whole
transactions (MsgTx).  All multi-byte integers on the wire are little
endian.

# Errors

Decoding distinguishes exactly two failure kinds.  ErrInsufficientBytes
is returned whenever the supplied buffer ends before the field being
decoded can be fully read; the caller can recover by supplying more
bytes.  ErrInvalidFormat is returned when content is structurally wrong
independent of length, which currently only happens when converting
hash strings.  Composite decoders forward the first sub-field failure
unchanged and produce no partial results.

This package performs no transaction validation of any kind.  Scripts
are carried as opaque bytes and referenced outputs are never looked up.
Witness data and transaction outputs are outside the supported layout.
*/
package txwire
