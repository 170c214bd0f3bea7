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

import "fmt"

// chunkSize caps a bytestring chunk at 254 bytes, keeping 0xFF free as the
// unambiguous end-of-chunks sentinel (spec: "0xFF sentinel for termination
// of chunked payloads").
const chunkSize = 254

// WriteByteString byte-aligns the stream, then emits length-prefixed chunks
// of at most chunkSize bytes, terminated by a single 0xFF sentinel byte.
func WriteByteString(w *Writer, bs []byte) {
	w.Pad()
	for len(bs) > 0 {
		n := len(bs)
		if n > chunkSize {
			n = chunkSize
		}
		w.WriteByte(byte(n))
		w.WriteBytes(bs[:n])
		bs = bs[n:]
	}
	w.WriteByte(0xFF)
}

// ReadByteString reverses WriteByteString.
func ReadByteString(r *Reader) ([]byte, error) {
	r.AlignByte()
	var out []byte
	for {
		lenByte, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if lenByte == 0xFF {
			return out, nil
		}
		chunk, err := r.ReadBytes(int(lenByte))
		if err != nil {
			return nil, fmt.Errorf("flat: bytestring chunk: %w", err)
		}
		out = append(out, chunk...)
	}
}
