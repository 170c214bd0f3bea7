// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package flat

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/probeum/scalus-uplc/crypto"
	"github.com/probeum/scalus-uplc/uplc"
)

// Version is the three-component flat program version header (major.minor.patch).
type Version struct {
	Major, Minor, Patch uint64
}

// Program pairs a decoded version header with its term.
type Program struct {
	Version Version
	Term    uplc.Term
}

// knownMajor is the only major version this decoder accepts; anything else
// is a version tuple it cannot interpret (spec §4.I: "unknown majors" fail).
const knownMajor = 1

// EncodeProgram flat-encodes (version, term), wraps it once as a CBOR byte
// string, wraps that again as a CBOR byte string (the "double-CBOR-hex"
// envelope), and hex-encodes the result.
//
// The double wrapping genuinely is just "a CBOR byte string" twice over —
// cbor.Marshal on a []byte is exactly this, so the envelope layer is one of
// the few places a generic CBOR library is the right tool; see data_cbor.go
// for where it is not.
func EncodeProgram(p Program) (string, error) {
	var w Writer
	ww := &w
	WriteNatUint(ww, p.Version.Major)
	WriteNatUint(ww, p.Version.Minor)
	WriteNatUint(ww, p.Version.Patch)
	if err := EncodeTerm(ww, p.Term); err != nil {
		return "", err
	}
	ww.Pad()
	inner := ww.Bytes()

	innerCBOR, err := cbor.Marshal(inner)
	if err != nil {
		return "", fmt.Errorf("flat: envelope inner CBOR: %w", err)
	}
	outerCBOR, err := cbor.Marshal(innerCBOR)
	if err != nil {
		return "", fmt.Errorf("flat: envelope outer CBOR: %w", err)
	}
	return hex.EncodeToString(outerCBOR), nil
}

// DecodeProgram reverses EncodeProgram: hex -> outer CBOR -> inner bytes ->
// flat decoder -> (version, term). An unrecognized major version is a
// decode failure, not a best-effort parse.
func DecodeProgram(hexStr string) (Program, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return Program{}, fmt.Errorf("flat: envelope hex: %w", err)
	}
	var innerCBOR []byte
	if err := cbor.Unmarshal(raw, &innerCBOR); err != nil {
		return Program{}, fmt.Errorf("flat: envelope outer CBOR: %w", err)
	}
	var inner []byte
	if err := cbor.Unmarshal(innerCBOR, &inner); err != nil {
		return Program{}, fmt.Errorf("flat: envelope inner CBOR: %w", err)
	}

	r := NewReader(inner)
	major, err := ReadNatUint(r)
	if err != nil {
		return Program{}, fmt.Errorf("flat: version major: %w", err)
	}
	if major != knownMajor {
		return Program{}, fmt.Errorf("flat: unknown program version major %d", major)
	}
	minor, err := ReadNatUint(r)
	if err != nil {
		return Program{}, fmt.Errorf("flat: version minor: %w", err)
	}
	patch, err := ReadNatUint(r)
	if err != nil {
		return Program{}, fmt.Errorf("flat: version patch: %w", err)
	}
	term, err := DecodeTerm(r)
	if err != nil {
		return Program{}, fmt.Errorf("flat: term: %w", err)
	}
	return Program{Version: Version{Major: major, Minor: minor, Patch: patch}, Term: term}, nil
}

// ScriptHash is blake2b-224 of (languageTag || innerBytes), where innerBytes
// is the flat-encoded (version, term) payload before any CBOR wrapping.
func ScriptHash(languageTag byte, innerBytes []byte) []byte {
	buf := make([]byte, 0, 1+len(innerBytes))
	buf = append(buf, languageTag)
	buf = append(buf, innerBytes...)
	return crypto.Blake2b224(buf)
}
