// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package filter decodes PDF stream filters (ISO 32000-1, 7.4).
//
// # Overview
//
// A PDF stream names the filters that were applied to its content. Given one
// of those names and the encoded bytes, Decode reproduces the original bytes;
// DecodeAll applies a list of names in order, feeding the output of each stage
// into the next:
//
//	data, err := filter.DecodeAll([]filter.Name{filter.ASCIIHex, filter.LZW}, raw)
//
// The recognized names form a closed set:
//
//	ASCIIHexDecode, ASCII85Decode, LZWDecode, FlateDecode, RunLengthDecode,
//	CCITTFaxDecode, JBIG2Decode, DCTDecode, JPXDecode, Crypt.
//
// The empty name is the identity filter. The image and crypt filters are
// recognized but always fail with ErrNotImplemented. Filter parameters
// (DecodeParms) are not interpreted; that is up to the caller.
//
// Decoding is a pure function of its input. Codecs keep no state between
// calls and may be shared by any number of goroutines.
package filter

import (
	"fmt"
	"slices"
)

// Name identifies a stream filter.
type Name string

const (
	Identity  Name = ""
	ASCIIHex  Name = "ASCIIHexDecode"
	ASCII85   Name = "ASCII85Decode"
	LZW       Name = "LZWDecode"
	Flate     Name = "FlateDecode"
	RunLength Name = "RunLengthDecode"
	CCITTFax  Name = "CCITTFaxDecode"
	JBIG2     Name = "JBIG2Decode"
	DCT       Name = "DCTDecode"
	JPX       Name = "JPXDecode"
	Crypt     Name = "Crypt"
)

// Codec decodes one filter. Implementations must not retain data or keep
// state across calls.
type Codec interface {
	Decode(data []byte) ([]byte, error)
}

// registry is built once and never modified.
var registry = map[Name]Codec{
	ASCIIHex:  asciiHexCodec{},
	ASCII85:   ascii85Codec{},
	LZW:       lzwCodec{},
	Flate:     flateCodec{},
	RunLength: runLengthCodec{},
	CCITTFax:  unsupportedCodec{name: CCITTFax},
	JBIG2:     unsupportedCodec{name: JBIG2},
	DCT:       unsupportedCodec{name: DCT},
	JPX:       unsupportedCodec{name: JPX},
	Crypt:     unsupportedCodec{name: Crypt},
}

// Lookup returns the codec registered for name. The identity name has no
// codec.
func Lookup(name Name) (Codec, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the recognized filter names, sorted.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Supported reports whether n has a working decoder. The identity name is
// supported; unknown names and the placeholder filters are not.
func (n Name) Supported() bool {
	if n == Identity {
		return true
	}
	c, ok := registry[n]
	if !ok {
		return false
	}
	_, stub := c.(unsupportedCodec)
	return !stub
}

// ParseNames converts filter names taken from a stream dictionary.
func ParseNames(names []string) ([]Name, error) {
	out := make([]Name, 0, len(names))
	for i, s := range names {
		n := Name(s)
		if _, ok := registry[n]; !ok && n != Identity {
			return nil, &Error{Filter: n, Kind: ErrUnknownFilter, Detail: fmt.Sprintf("entry %d", i)}
		}
		out = append(out, n)
	}
	return out, nil
}

// Decode decodes data with the named filter. The empty name returns data
// unchanged.
func Decode(name Name, data []byte) ([]byte, error) {
	return defaultDecoder.Decode(name, data)
}

// DecodeAll applies names left to right. An empty list returns data
// unchanged. The first failing stage aborts the pipeline and no partial
// output is returned.
func DecodeAll(names []Name, data []byte) ([]byte, error) {
	return defaultDecoder.DecodeAll(names, data)
}

func decodeOne(name Name, data []byte) ([]byte, error) {
	if name == Identity {
		return data, nil
	}
	c, ok := registry[name]
	if !ok {
		return nil, &Error{Filter: name, Kind: ErrUnknownFilter}
	}
	return c.Decode(data)
}
