// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

const (
	lzwClear      = 256
	lzwEOD        = 257
	lzwFirstCode  = 258
	lzwMaxEntries = 4096
	lzwMinWidth   = 9
)

// lzwCodec implements LZWDecode with EarlyChange 1: the code width grows as
// soon as the table reaches 511, 1023 and 2047 entries.
type lzwCodec struct{}

func (lzwCodec) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	return newLZWDecoder(data).run()
}

// bitReader reads MSB-first codes from a byte slice.
type bitReader struct {
	src []byte
	pos int // in bits
}

func (r *bitReader) remaining() int {
	return len(r.src)*8 - r.pos
}

func (r *bitReader) read(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		bit := (r.src[r.pos>>3] >> (7 - uint(r.pos&7))) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v
}

// lzwDecoder holds the state of a single LZWDecode call.
type lzwDecoder struct {
	bits  bitReader
	table [][]byte // 256 literals, two unused control slots, learned entries
	width int
	prev  int // last data code, -1 right after start or clear
	out   []byte
}

func newLZWDecoder(data []byte) *lzwDecoder {
	d := &lzwDecoder{
		bits: bitReader{src: data},
		out:  make([]byte, 0, len(data)*2),
	}
	d.reset()
	return d
}

func (d *lzwDecoder) reset() {
	if d.table == nil {
		d.table = make([][]byte, lzwFirstCode, lzwMaxEntries)
		for i := 0; i < 256; i++ {
			d.table[i] = []byte{byte(i)}
		}
	}
	d.table = d.table[:lzwFirstCode]
	d.width = lzwMinWidth
	d.prev = -1
}

func (d *lzwDecoder) size() int {
	return len(d.table)
}

func (d *lzwDecoder) run() ([]byte, error) {
	// trailing padding bits shorter than a code are ignored
	for d.bits.remaining() >= d.width {
		if d.step(d.bits.read(d.width)) {
			break
		}
	}
	return d.out, nil
}

// step processes one code and reports whether it was the EOD marker.
// Malformed codes never fail: an undefined first code is skipped and any code
// at or past the end of the table is decoded as prev+prev[0].
func (d *lzwDecoder) step(code int) bool {
	switch {
	case code == lzwEOD:
		return true
	case code == lzwClear:
		d.reset()
		return false
	case d.prev < 0:
		if code < d.size() {
			d.out = append(d.out, d.table[code]...)
			d.prev = code
		}
		return false
	}

	prev := d.table[d.prev]
	if code < d.size() {
		cur := d.table[code]
		d.out = append(d.out, cur...)
		d.add(extend(prev, cur[0]))
		d.prev = code
		return false
	}

	entry := extend(prev, prev[0])
	d.out = append(d.out, entry...)
	if d.add(entry) {
		d.prev = d.size() - 1
	}
	return false
}

func (d *lzwDecoder) add(entry []byte) bool {
	if len(d.table) == lzwMaxEntries {
		return false
	}
	d.table = append(d.table, entry)
	switch len(d.table) {
	case 511:
		d.width = 10
	case 1023:
		d.width = 11
	case 2047:
		d.width = 12
	}
	return true
}

func extend(prefix []byte, b byte) []byte {
	e := make([]byte, len(prefix)+1)
	copy(e, prefix)
	e[len(prefix)] = b
	return e
}
