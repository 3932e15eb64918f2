// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"bytes"
	"compress/zlib"
	"io"
)

// flateCodec implements FlateDecode on top of compress/zlib. Predictors are
// not applied.
type flateCodec struct{}

func (flateCodec) Decode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Filter: Flate, Kind: ErrUnderlyingCodec, Detail: "zlib init", Err: err}
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, &Error{Filter: Flate, Kind: ErrUnderlyingCodec, Detail: "zlib decompress", Err: err}
	}
	return out, nil
}
