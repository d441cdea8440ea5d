// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"encoding/binary"
	"strconv"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion int32 = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// OutPointSize is the serialized size of an outpoint.
	// Hash 32 bytes + Index 4 bytes.
	OutPointSize = HashSize + 4
)

const (
	// defaultTxInAlloc is the default size used for the backing array for
	// transaction inputs.  The array will dynamically grow as needed, but
	// this figure is intended to provide enough space for the number of
	// inputs in a typical transaction without needing to grow the backing
	// array multiple times.
	defaultTxInAlloc = 15

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + HashSize

	// minTxPayload is the minimum payload size for a transaction.  Version
	// 4 bytes + Varint number of transaction inputs 1 byte + LockTime 4
	// bytes.  Note that any realistically usable transaction must have at
	// least one input, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	minTxPayload = 4 + 1 + 4
)

// ScriptSerializeSize returns the number of bytes it would take to
// serialize script with its variable length size prefix.
func ScriptSerializeSize(script []byte) int {
	return VarIntSerializeSize(uint64(len(script))) + len(script)
}

// AppendScript appends the serialization of script to b, which is a
// variable length integer containing the length of the script followed by
// the raw script bytes, and returns the extended buffer.  The script is
// treated as opaque data, so there is no error path.
func AppendScript(b []byte, script []byte) []byte {
	b = AppendVarInt(b, uint64(len(script)))
	return append(b, script...)
}

// ReadScript decodes a variable length script from the front of buf and
// returns it along with the number of bytes consumed, which includes the
// length prefix.  The returned script is a fresh copy that does not alias
// buf.
//
// No upper limit is placed on the declared length other than it fitting
// within the supplied buffer.  A length prefix claiming more bytes than
// remain is how truncated or corrupt input is detected, and results in
// ErrInsufficientBytes.
func ReadScript(buf []byte) ([]byte, int, error) {
	count, n, err := ReadVarInt(buf)
	if err != nil {
		return nil, 0, err
	}

	// Prevent a malformed length prefix from allocating and reading
	// beyond the supplied buffer.
	if count > uint64(len(buf)-n) {
		return nil, 0, ErrInsufficientBytes
	}

	end := n + int(count)
	script := make([]byte, count)
	copy(script, buf[n:end])
	return script, end, nil
}

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 decimal digits,
	// which will fit any uint32.
	buf := make([]byte, 2*HashSize+1, 2*HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// SerializeSize returns the number of bytes it would take to serialize
// the outpoint.  It is always OutPointSize.
func (o *OutPoint) SerializeSize() int {
	return OutPointSize
}

// Serialize returns the serialization of the outpoint, which is the raw
// hash bytes followed by the index as a little-endian uint32.  There is
// no error path.
func (o *OutPoint) Serialize() []byte {
	return appendOutPoint(make([]byte, 0, OutPointSize), o)
}

// appendOutPoint appends the serialization of o to b and returns the
// extended buffer.
func appendOutPoint(b []byte, o *OutPoint) []byte {
	b = append(b, o.Hash[:]...)
	return binary.LittleEndian.AppendUint32(b, o.Index)
}

// ReadOutPoint decodes an outpoint from the front of buf and returns it
// along with the number of bytes consumed, which is always OutPointSize
// on success.  ErrInsufficientBytes is returned when buf holds fewer than
// OutPointSize bytes.
func ReadOutPoint(buf []byte) (OutPoint, int, error) {
	var o OutPoint
	if len(buf) < OutPointSize {
		return o, 0, ErrInsufficientBytes
	}

	copy(o.Hash[:], buf[:HashSize])
	o.Index = binary.LittleEndian.Uint32(buf[HashSize:OutPointSize])
	return o, OutPointSize, nil
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new bitcoin transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// SerializeSize returns the number of bytes it would take to serialize
// the transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return OutPointSize + ScriptSerializeSize(t.SignatureScript) + 4
}

// Serialize returns the serialization of the transaction input, which is
// the previous outpoint, the length-prefixed signature script, and the
// sequence number as a little-endian uint32.  There is no error path.
func (t *TxIn) Serialize() []byte {
	return appendTxIn(make([]byte, 0, t.SerializeSize()), t)
}

// appendTxIn appends the serialization of ti to b and returns the
// extended buffer.
func appendTxIn(b []byte, ti *TxIn) []byte {
	b = appendOutPoint(b, &ti.PreviousOutPoint)
	b = AppendScript(b, ti.SignatureScript)
	return binary.LittleEndian.AppendUint32(b, ti.Sequence)
}

// ReadTxIn decodes a transaction input from the front of buf and returns
// it along with the total number of bytes consumed.  The outpoint and the
// signature script are decoded first with their failures forwarded
// unchanged, then the 4 sequence bytes are required or
// ErrInsufficientBytes is returned.
func ReadTxIn(buf []byte) (*TxIn, int, error) {
	prevOut, n, err := ReadOutPoint(buf)
	if err != nil {
		return nil, 0, err
	}

	script, sn, err := ReadScript(buf[n:])
	if err != nil {
		return nil, 0, err
	}
	offset := n + sn

	if len(buf) < offset+4 {
		return nil, 0, ErrInsufficientBytes
	}
	sequence := binary.LittleEndian.Uint32(buf[offset : offset+4])

	ti := TxIn{
		PreviousOutPoint: prevOut,
		SignatureScript:  script,
		Sequence:         sequence,
	}
	return &ti, offset + 4, nil
}

// MsgTx implements the legacy bitcoin tx wire layout in scope here, which
// carries the transaction version, its inputs, and the lock time.  Use
// the Serialize and Deserialize functions to convert between the struct
// and the exact wire bytes.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	LockTime uint32
}

// NewMsgTx returns a new bitcoin tx with the provided version.  The
// return instance has a default lock time of zero and no transaction
// inputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, defaultTxInAlloc),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// TxHash generates the hash for the transaction, which is the double
// sha256 of its serialization.
func (msg *MsgTx) TxHash() Hash {
	return DoubleHashH(msg.Serialize())
}

// Copy creates a deep copy of a transaction so that the original does not
// get modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making
	// space for the transaction inputs.
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		LockTime: msg.LockTime,
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		// Deep copy the old signature script.
		var newScript []byte
		oldScript := oldTxIn.SignatureScript
		oldScriptLen := len(oldScript)
		if oldScriptLen > 0 {
			newScript = make([]byte, oldScriptLen)
			copy(newScript, oldScript[:oldScriptLen])
		}

		// Create new txIn with the deep copied data and append it to
		// new Tx.
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	return &newTx
}

// SerializeSize returns the number of bytes it would take to serialize
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}

	return n
}

// Serialize returns the serialization of the transaction, which is the
// version as a little-endian uint32, a varint with the number of inputs
// followed by each serialized input, and the lock time as a little-endian
// uint32.  There is no error path.
func (msg *MsgTx) Serialize() []byte {
	b := make([]byte, 0, msg.SerializeSize())
	b = binary.LittleEndian.AppendUint32(b, uint32(msg.Version))
	b = AppendVarInt(b, uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		b = appendTxIn(b, ti)
	}
	return binary.LittleEndian.AppendUint32(b, msg.LockTime)
}

// Deserialize decodes a transaction from the front of buf into the
// receiver and returns the total number of bytes consumed, so callers can
// detect and continue past any trailing data.  The receiver is left
// untouched when an error is returned; decoding stops at the first
// failing field with no partial result.
//
// Purely structural checks only are performed.  Referenced outpoints are
// not resolved and scripts are not interpreted.
func (msg *MsgTx) Deserialize(buf []byte) (int, error) {
	if len(buf) < 4 {
		return 0, ErrInsufficientBytes
	}
	version := int32(binary.LittleEndian.Uint32(buf[0:4]))

	count, n, err := ReadVarInt(buf[4:])
	if err != nil {
		return 0, err
	}
	offset := 4 + n

	// Every input requires at least minTxInPayload bytes, so a count
	// which could not possibly fit in the remaining buffer is guaranteed
	// to run out of bytes.  Failing early avoids sizing the inputs slice
	// from an attacker controlled count.
	if count > uint64(len(buf)-offset)/minTxInPayload {
		return 0, ErrInsufficientBytes
	}

	txIns := make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti, n, err := ReadTxIn(buf[offset:])
		if err != nil {
			return 0, err
		}
		txIns = append(txIns, ti)
		offset += n
	}

	if len(buf) < offset+4 {
		return 0, ErrInsufficientBytes
	}
	lockTime := binary.LittleEndian.Uint32(buf[offset : offset+4])

	msg.Version = version
	msg.TxIn = txIns
	msg.LockTime = lockTime
	return offset + 4, nil
}
