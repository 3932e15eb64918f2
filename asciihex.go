// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

// asciiHexCodec implements ASCIIHexDecode. Pairs of hex digits become one
// byte, white-space is ignored and '>' ends the data. A lone final digit is
// taken as the whole byte value. Empty input decodes to empty output even
// though it has no '>'. White-space is the PDF set (NUL, HT, LF, FF, CR, SP);
// vertical tab is not white-space.
type asciiHexCodec struct{}

func (asciiHexCodec) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	digits := make([]byte, 0, len(data))
	terminated := false
	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			terminated = true
			break
		}
		digits = append(digits, c)
	}
	if !terminated {
		return nil, invalidEncoding(ASCIIHex, "missing end-of-data marker '>'")
	}

	out := make([]byte, 0, (len(digits)+1)/2)
	for i := 0; i < len(digits); i += 2 {
		hi, ok := hexValue(digits[i])
		if !ok {
			return nil, invalidEncoding(ASCIIHex, "invalid hex digit %q at digit %d", digits[i], i)
		}
		if i+1 == len(digits) {
			out = append(out, hi)
			break
		}
		lo, ok := hexValue(digits[i+1])
		if !ok {
			return nil, invalidEncoding(ASCIIHex, "invalid hex digit %q at digit %d", digits[i+1], i+1)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// hexValue converts a hexadecimal character to its numeric value (0-15).
func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// isWhitespace reports whether c is a PDF white-space character.
func isWhitespace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
