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
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ed25519"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
	"github.com/probeum/scalus-uplc/crypto"
)

func cryptoEntries() []Entry {
	return []Entry{
		{name: "sha2_256", minVersion: cost.PlutusV1, arity: 1, eval: hashEntry(crypto.SHA2_256)},
		{name: "sha3_256", minVersion: cost.PlutusV1, arity: 1, eval: hashEntry(crypto.SHA3_256)},
		{name: "blake2b_256", minVersion: cost.PlutusV1, arity: 1, eval: hashEntry(crypto.Blake2b256)},
		{name: "blake2b_224", minVersion: cost.PlutusV2, arity: 1, eval: hashEntry(crypto.Blake2b224)},
		{name: "keccak_256", minVersion: cost.PlutusV2, arity: 1, eval: hashEntry(crypto.Keccak256)},

		{name: "verifyEd25519Signature", minVersion: cost.PlutusV1, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			key, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			msg, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			sig, err := asByteString(args[2])
			if err != nil {
				return nil, err
			}
			if len(key) != ed25519.PublicKeySize {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifyEd25519Signature: bad public key length %d", len(key))
			}
			if len(sig) != ed25519.SignatureSize {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifyEd25519Signature: bad signature length %d", len(sig))
			}
			return boolVal(ed25519.Verify(ed25519.PublicKey(key), msg, sig)), nil
		}},

		{name: "verifyEcdsaSecp256k1Signature", minVersion: cost.PlutusV2, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			key, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			msg, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			sig, err := asByteString(args[2])
			if err != nil {
				return nil, err
			}
			if len(msg) != 32 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifyEcdsaSecp256k1Signature: message must be a 32-byte digest")
			}
			pub, perr := btcec.ParsePubKey(key)
			if perr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifyEcdsaSecp256k1Signature: bad public key: %v", perr)
			}
			parsed, serr := ecdsa.ParseDERSignature(sig)
			if serr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifyEcdsaSecp256k1Signature: bad signature: %v", serr)
			}
			return boolVal(parsed.Verify(msg, pub)), nil
		}},

		{name: "verifySchnorrSecp256k1Signature", minVersion: cost.PlutusV2, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			key, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			msg, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			sig, err := asByteString(args[2])
			if err != nil {
				return nil, err
			}
			if len(sig) != 64 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifySchnorrSecp256k1Signature: bad signature length %d", len(sig))
			}
			pub, perr := schnorr.ParsePubKey(key)
			if perr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "verifySchnorrSecp256k1Signature: bad public key: %v", perr)
			}
			// btcec/v2's schnorr.Verify is built for Bitcoin Taproot and only
			// accepts a pre-hashed 32-byte message. BIP-340 itself allows an
			// arbitrary-length message — its tagged challenge hash absorbs
			// msg directly — so the verification is done here against the
			// raw message instead of delegating to that fixed-digest API.
			return boolVal(verifyBIP340(pub, key, sig, msg)), nil
		}},
	}
}

// verifyBIP340 implements the BIP-340 Schnorr verification equation over
// secp256k1 directly against an arbitrary-length msg: parse (r,s) from sig,
// recompute the tagged challenge e = taggedHash("BIP0340/challenge", r||P||msg)
// mod n, and check that s*G - e*P has an even-y affine x-coordinate equal to r.
func verifyBIP340(pub *btcec.PublicKey, pubXBytes, sig, msg []byte) bool {
	var r secp256k1.FieldVal
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return false
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return false
	}

	e := bip340Challenge(sig[:32], pubXBytes, msg)

	var p secp256k1.JacobianPoint
	pub.AsJacobian(&p)

	var sG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &sG)

	var eP secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&e, &p, &eP)
	eP.ToAffine()
	eP.Y.Negate(1)
	eP.Y.Normalize()

	var rPoint secp256k1.JacobianPoint
	secp256k1.AddNonConst(&sG, &eP, &rPoint)
	if rPoint.Z.IsZero() {
		return false
	}
	rPoint.ToAffine()
	if rPoint.Y.IsOdd() {
		return false
	}
	return rPoint.X.Equals(&r)
}

// bip340Challenge computes taggedHash("BIP0340/challenge", r||pubX||msg) mod
// the curve order, per BIP-340's tagged-hash construction
// (SHA256(SHA256(tag)||SHA256(tag)||data)).
func bip340Challenge(rBytes, pubXBytes, msg []byte) secp256k1.ModNScalar {
	tag := sha256.Sum256([]byte("BIP0340/challenge"))
	h := sha256.New()
	h.Write(tag[:])
	h.Write(tag[:])
	h.Write(rBytes)
	h.Write(pubXBytes)
	h.Write(msg)

	var e secp256k1.ModNScalar
	e.SetByteSlice(h.Sum(nil))
	return e
}

// hashEntry lifts a pure []byte -> []byte hash function into an EvalFunc.
func hashEntry(h func([]byte) []byte) EvalFunc {
	return func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
		b, err := asByteString(args[0])
		if err != nil {
			return nil, err
		}
		return bsVal(h(b)), nil
	}
}
