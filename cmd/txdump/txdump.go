// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// txdump decodes a hex-encoded legacy bitcoin transaction and prints a
// human-readable report of its contents.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"

	"github.com/btcsuite/txwire"
)

var cfg *config

// dumpTx writes a multi-line report of the decoded transaction to w:
// the version and lock time followed by, for each input, the previous
// output it spends, its signature script, and its sequence number.  The
// transaction is only read, never modified.
func dumpTx(w io.Writer, tx *txwire.MsgTx) {
	fmt.Fprintf(w, "Version: %d\n", tx.Version)
	fmt.Fprintf(w, "Lock Time: %d\n", tx.LockTime)
	for i, txIn := range tx.TxIn {
		fmt.Fprintf(w, "Input %d:\n", i)
		fmt.Fprintf(w, "  Previous Output Txid: %v\n",
			txIn.PreviousOutPoint.Hash)
		fmt.Fprintf(w, "  Previous Output Vout: %d\n",
			txIn.PreviousOutPoint.Index)
		fmt.Fprintf(w, "  Script Sig (%d bytes): %x\n",
			len(txIn.SignatureScript), txIn.SignatureScript)
		fmt.Fprintf(w, "  Sequence: %d\n", txIn.Sequence)
	}
}

// txInJSON and txJSON describe the JSON report for a decoded transaction.
// They are presentation types only, with scripts rendered as hex rather
// than the base64 encoding/json would produce for raw bytes.
type txInJSON struct {
	PrevTxid  txwire.Hash `json:"prevTxid"`
	PrevVout  uint32      `json:"prevVout"`
	ScriptSig string      `json:"scriptSig"`
	Sequence  uint32      `json:"sequence"`
}

type txJSON struct {
	Txid     txwire.Hash `json:"txid"`
	Version  int32       `json:"version"`
	LockTime uint32      `json:"lockTime"`
	Inputs   []txInJSON  `json:"inputs"`
}

// dumpTxJSON writes the decoded transaction to w as indented JSON.
func dumpTxJSON(w io.Writer, tx *txwire.MsgTx) error {
	report := txJSON{
		Txid:     tx.TxHash(),
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]txInJSON, 0, len(tx.TxIn)),
	}
	for _, txIn := range tx.TxIn {
		report.Inputs = append(report.Inputs, txInJSON{
			PrevTxid:  txIn.PreviousOutPoint.Hash,
			PrevVout:  txIn.PreviousOutPoint.Index,
			ScriptSig: hex.EncodeToString(txIn.SignatureScript),
			Sequence:  txIn.Sequence,
		})
	}

	encoded, err := json.MarshalIndent(&report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", encoded)
	return err
}

// loadTxHex returns the hex string of the transaction to decode, either
// from the input file or from the command line argument.
func loadTxHex(remainingArgs []string) (string, error) {
	if cfg.InFile != "" {
		contents, err := os.ReadFile(cfg.InFile)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(contents)), nil
	}
	return strings.TrimSpace(remainingArgs[0]), nil
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit()
// is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, remainingArgs, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	if cfg.DebugLevel {
		log.SetLevel(btclog.LevelDebug)
	}

	txHex, err := loadTxHex(remainingArgs)
	if err != nil {
		log.Errorf("Failed to read transaction hex: %v", err)
		return err
	}

	serialized, err := hex.DecodeString(txHex)
	if err != nil {
		log.Errorf("Invalid transaction hex: %v", err)
		return err
	}
	log.Debugf("Decoding %d bytes", len(serialized))

	var tx txwire.MsgTx
	n, err := tx.Deserialize(serialized)
	if err != nil {
		log.Errorf("Failed to decode transaction: %v", err)
		return err
	}
	log.Infof("Decoded transaction %v (%d bytes, %d inputs)",
		tx.TxHash(), n, len(tx.TxIn))
	if n < len(serialized) {
		log.Warnf("Ignored %d trailing bytes after the transaction",
			len(serialized)-n)
	}

	switch {
	case cfg.JSON:
		if err := dumpTxJSON(os.Stdout, &tx); err != nil {
			log.Errorf("Failed to dump transaction: %v", err)
			return err
		}
	case cfg.FmtStruct:
		fmt.Println(spew.Sdump(&tx))
	default:
		dumpTx(os.Stdout, &tx)
	}

	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
