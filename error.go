// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import "errors"

// ErrInsufficientBytes describes an error in which a buffer being decoded
// ends before the field currently being read can be fully decoded.  It is
// always recoverable by the caller supplying more bytes and retrying.
var ErrInsufficientBytes = errors.New("insufficient bytes to decode field")

// ErrInvalidFormat describes an error in which the content of a field is
// structurally wrong independent of its length, such as a hash string that
// is not valid hex or does not decode to exactly HashSize bytes.
var ErrInvalidFormat = errors.New("invalid format")
