// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

// unsupportedCodec stands in for the image and crypt filters. It fails for
// every input, the empty one included.
type unsupportedCodec struct {
	name Name
}

func (c unsupportedCodec) Decode([]byte) ([]byte, error) {
	return nil, &Error{Filter: c.name, Kind: ErrNotImplemented}
}
