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

package engine

import (
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/probeum/scalus-uplc/crypto"
	"github.com/probeum/scalus-uplc/uplc/flat"
)

// DecodedCache memoizes flat.DecodeProgram keyed by the blake2b-224 hash of
// the hex-decoded envelope bytes, so a harness
// evaluating the same on-chain script across many transactions skips
// re-decoding it every time. Purely an optimization: flat.DecodeProgram
// remains directly callable for anyone who doesn't want caching, and a
// cache miss falls back to it unconditionally.
type DecodedCache struct {
	cache *lru.Cache
}

// NewDecodedCache builds a cache holding up to size decoded programs.
func NewDecodedCache(size int) (*DecodedCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("engine: decoded-term cache: %w", err)
	}
	return &DecodedCache{cache: c}, nil
}

// Decode returns the decoded program for hexStr, from cache if a prior call
// already decoded this exact envelope.
func (c *DecodedCache) Decode(hexStr string) (flat.Program, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return flat.Program{}, fmt.Errorf("flat: envelope hex: %w", err)
	}
	key := string(crypto.Blake2b224(raw))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(flat.Program), nil
	}
	program, err := flat.DecodeProgram(hexStr)
	if err != nil {
		return flat.Program{}, err
	}
	c.cache.Add(key, program)
	return program, nil
}
