// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import "bytes"

const runLengthEOD = 128

// runLengthCodec implements RunLengthDecode. A control byte below 128 copies
// the next control+1 bytes, one above 128 repeats the next byte 257-control
// times and 128 ends the data. Input that ends without the EOD byte is
// accepted.
type runLengthCodec struct{}

func (runLengthCodec) Decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)
	for i := 0; i < len(data); {
		ctrl := data[i]
		i++
		switch {
		case ctrl == runLengthEOD:
			return out, nil
		case ctrl < runLengthEOD:
			n := int(ctrl) + 1
			if i+n > len(data) {
				return nil, invalidEncoding(RunLength, "literal run of %d bytes at offset %d, only %d left", n, i-1, len(data)-i)
			}
			out = append(out, data[i:i+n]...)
			i += n
		default:
			if i >= len(data) {
				return nil, invalidEncoding(RunLength, "repeat run at offset %d has no byte to repeat", i-1)
			}
			out = append(out, bytes.Repeat(data[i:i+1], 257-int(ctrl))...)
			i++
		}
	}
	return out, nil
}
