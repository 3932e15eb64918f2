// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"bytes"
	"encoding/binary"
)

// pow85[i] is the weight of the i-th symbol of a group.
var pow85 = [5]uint32{85 * 85 * 85 * 85, 85 * 85 * 85, 85 * 85, 85, 1}

var ascii85EOD = []byte("~>")

// ascii85Codec implements ASCII85Decode. White-space is the PDF set used by
// ASCIIHexDecode, so NUL is skipped and vertical tab is an invalid symbol.
type ascii85Codec struct{}

func (ascii85Codec) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	clean := make([]byte, 0, len(data))
	for _, c := range data {
		if !isWhitespace(c) {
			clean = append(clean, c)
		}
	}
	if eod := bytes.Index(clean, ascii85EOD); eod >= 0 {
		clean = clean[:eod]
	}
	for i, c := range clean {
		if (c < '!' || c > 'u') && c != 'z' {
			return nil, invalidEncoding(ASCII85, "invalid character 0x%02x at offset %d", c, i)
		}
	}

	out := make([]byte, 0, len(clean)/5*4+4)
	// wraps for groups above s8W-!, only the low 32 bits are emitted
	var tuple uint32
	pos := 0
	for i, c := range clean {
		if c == 'z' {
			if pos != 0 {
				return nil, invalidEncoding(ASCII85, "'z' inside a group at offset %d", i)
			}
			out = append(out, 0, 0, 0, 0)
			continue
		}
		tuple += uint32(c-'!') * pow85[pos]
		pos++
		if pos == 5 {
			out = binary.BigEndian.AppendUint32(out, tuple)
			tuple, pos = 0, 0
		}
	}

	switch pos {
	case 0:
	case 1:
		return nil, invalidEncoding(ASCII85, "final group has a single character")
	default:
		// pad the missing low-order digits
		tuple += pow85[pos-1]
		var last [4]byte
		binary.BigEndian.PutUint32(last[:], tuple)
		out = append(out, last[:pos-1]...)
	}
	return out, nil
}
