// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloLZWHex = "800D878221D1186E502888C8230241847C2C158F8B26C178AC7E29178CC5642191ACDE311609CD04" +
	"D1C918784B398F05873150C0703731954A4442E9A86E4222988DE381C46C66283A8907452371F87D01>"

const helloContent = "BT\n/F1 30 Tf 350 750 Td 20 TL\n1 Tr (Hello world) Tj \nET"

var unsupportedNames = []Name{CCITTFax, JBIG2, DCT, JPX, Crypt}

func TestDecode_Identity(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("tc-lib-pdf-filter"),
		{0x00, 0xff, 0x80, '>'},
	}
	for _, in := range inputs {
		out, err := Decode(Identity, in)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		out, err = DecodeAll(nil, in)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		out, err = DecodeAll([]Name{Identity, Identity}, in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestDecode_UnknownFilter(t *testing.T) {
	for _, name := range []Name{"Unknown", "flatedecode", "AHx", "ASCIIHexDecode "} {
		t.Run(string(name), func(t *testing.T) {
			out, err := Decode(name, []byte("YZ"))
			assert.Nil(t, out)
			require.ErrorIs(t, err, ErrUnknownFilter)

			var ferr *Error
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, name, ferr.Filter)
			assert.Contains(t, err.Error(), string(name))
		})
	}
}

func TestDecode_Vectors(t *testing.T) {
	tests := []struct {
		name  string
		fname Name
		in    string
		want  string
	}{
		{"hex spaced", ASCIIHex, "74 63 2D 6C 69 62 2D 70 64 66 2D 66 69 6C 74 65 72>", "tc-lib-pdf-filter"},
		{"hex packed", ASCIIHex, "74632D6C69622D7064662D66696C746572>", "tc-lib-pdf-filter"},
		{"hex odd digit", ASCIIHex, "30 31 32 33 34 35 36 37 38 39 9>", "0123456789\t"},
		{"a85 text", ASCII85, "FCQn=BjrZ5A7dE*Bl%m&EW~>", "tc-lib-pdf-filter"},
		{"a85 empty", ASCII85, "~>", ""},
		{"a85 partial", ASCII85, "<<~>", "U"},
		{"a85 zero group", ASCII85, "z~>", "\x00\x00\x00\x00"},
		{"a85 lorem", ASCII85, "  9Q+r_D'3P3F*2=BA8c:&EZfF;F<G\"/ATTIG@rH7+ARfgnFEMUH@:X(kBldcuDJ()'Ch[t ",
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit"},
		{"runlength", RunLength, "\xf7A\x12 tc-lib-pdf-filter \xf7B\x80", "AAAAAAAAAA tc-lib-pdf-filter BBBBBBBBBB"},
		{"flate", Flate, "\x78\x9c\x2b\x49\xd6\xcd\xc9\x4c\xd2\x2d\x48\x49\xd3\x4d\xcb\xcc\x29\x49\x2d\x02\x00\x37\x64\x06\x56",
			"tc-lib-pdf-filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode(tt.fname, []byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fname Name
		in    string
		kind  error
	}{
		{"hex no terminator", ASCIIHex, "30 31 32 33 34 35 36 37 38 39 9", ErrInvalidEncoding},
		{"hex bad digit", ASCIIHex, "YZ 34 HJ>", ErrInvalidEncoding},
		{"a85 out of range", ASCII85, "\xfe", ErrInvalidEncoding},
		{"runlength truncated", RunLength, "\x05abc", ErrInvalidEncoding},
		{"flate garbage", Flate, "ABC", ErrUnderlyingCodec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode(tt.fname, []byte(tt.in))
			assert.Nil(t, out, "no partial output on failure")
			require.ErrorIs(t, err, tt.kind)

			var ferr *Error
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, tt.fname, ferr.Filter)
		})
	}
}

func TestDecode_NotImplemented(t *testing.T) {
	for _, name := range unsupportedNames {
		t.Run(string(name), func(t *testing.T) {
			for _, in := range [][]byte{[]byte("data"), {0}, {}, nil} {
				out, err := Decode(name, in)
				assert.Nil(t, out)
				require.ErrorIs(t, err, ErrNotImplemented)
				assert.Contains(t, err.Error(), string(name))
			}
		})
	}
}

func TestDecodeAll(t *testing.T) {
	code := "46 43 51 6E 3D 42 6A 72 5A 35 41 37 64 45 2A 42 6C 25 6D 26 45 57 7E 3E>"
	out, err := DecodeAll([]Name{ASCIIHex, ASCII85}, []byte(code))
	require.NoError(t, err)
	assert.Equal(t, "tc-lib-pdf-filter", string(out))

	out, err = DecodeAll([]Name{ASCIIHex, LZW, ASCII85}, []byte(helloLZWHex))
	require.NoError(t, err)
	assert.Equal(t, helloContent, string(out))
}

func TestDecodeAll_AbortsOnFirstFailure(t *testing.T) {
	out, err := DecodeAll([]Name{ASCIIHex, "Bogus", DCT}, []byte("41>"))
	assert.Nil(t, out)
	require.ErrorIs(t, err, ErrUnknownFilter)
	assert.NotErrorIs(t, err, ErrNotImplemented)

	out, err = DecodeAll([]Name{ASCIIHex, ASCII85}, []byte("41>"))
	assert.Nil(t, out)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ASCII85, ferr.Filter, "error comes from the second stage unchanged")
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.IsIncreasing(t, names)
	assert.NotContains(t, names, Identity)

	for _, n := range names {
		c, ok := Lookup(n)
		assert.True(t, ok)
		assert.NotNil(t, c)
	}
	_, ok := Lookup("Unknown")
	assert.False(t, ok)
}

func TestName_Supported(t *testing.T) {
	for _, n := range []Name{Identity, ASCIIHex, ASCII85, LZW, Flate, RunLength} {
		assert.Truef(t, n.Supported(), "%q should be supported", n)
	}
	for _, n := range append(unsupportedNames, "Unknown") {
		assert.Falsef(t, n.Supported(), "%q should not be supported", n)
	}
}

func TestParseNames(t *testing.T) {
	names, err := ParseNames([]string{"ASCIIHexDecode", "", "LZWDecode"})
	require.NoError(t, err)
	assert.Equal(t, []Name{ASCIIHex, Identity, LZW}, names)

	names, err = ParseNames([]string{"FlateDecode", "Fl"})
	assert.Nil(t, names)
	require.ErrorIs(t, err, ErrUnknownFilter)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestError_Message(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &Error{Filter: Flate, Kind: ErrUnderlyingCodec, Detail: "zlib decompress", Err: cause}

	assert.Equal(t, "FlateDecode: underlying codec failure: zlib decompress: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUnderlyingCodec)
	assert.NotErrorIs(t, err, ErrInvalidEncoding)

	unknown := &Error{Filter: "Bogus", Kind: ErrUnknownFilter}
	assert.Equal(t, `unknown filter "Bogus"`, unknown.Error())
}
