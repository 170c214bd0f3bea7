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

package builtin

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// strictUTF8Decoder rejects overlong and surrogate encodings the way
// stdlib's unicode/utf8 alone will not — grounded on golang.org/x/text's
// transform-based decoder (DOMAIN STACK).
var strictUTF8Decoder = unicode.UTF8.NewDecoder()

func stringEntries() []Entry {
	return []Entry{
		{name: "appendString", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return strVal(a + b), nil
		}},
		{name: "equalsString", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asString(args[1])
			if err != nil {
				return nil, err
			}
			return boolVal(a == b), nil
		}},
		{name: "encodeUtf8", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			s, err := asString(args[0])
			if err != nil {
				return nil, err
			}
			return bsVal([]byte(s)), nil
		}},
		{name: "decodeUtf8", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			decoded, terr := transform.Bytes(strictUTF8Decoder, bs)
			if terr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "decodeUtf8: ill-formed UTF-8 sequence")
			}
			if !bytes.Equal(decoded, bs) {
				// The transform decoder replaces each ill-formed sequence with
				// U+FFFD instead of failing, so any byte-for-byte difference
				// from the input means the input was not well-formed UTF-8.
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "decodeUtf8: ill-formed UTF-8 sequence")
			}
			return strVal(string(decoded)), nil
		}},
	}
}
