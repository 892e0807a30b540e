/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package chunker streams the features of a GeoJSON FeatureCollection: the
// Reader yields one feature at a time from a byte stream without holding
// the features array in memory, and the Writer emits one feature at a time,
// managing the framing syntax around them. Both also speak the flattened
// record form, where a caller-defined type carries the geometry plus its
// properties as ordinary struct fields.
package chunker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/geojson"
	"github.com/hypermodeinc/geojson/x"
)

type readerState int

const (
	beforeFeatures readerState = iota
	duringFeatures
	afterFeatures
)

func (s readerState) String() string {
	switch s {
	case beforeFeatures:
		return "before features"
	case duringFeatures:
		return "during features"
	case afterFeatures:
		return "after features"
	default:
		return "unknown state"
	}
}

// FramingError reports a byte the reader did not expect in its current
// state.
type FramingError struct {
	State string
	Byte  byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("chunker: unexpected byte %q %s", e.Byte, e.State)
}

// Reader reads the features of a FeatureCollection one at a time from a
// byte stream. It is single pass and not restartable, and it works
// independently of member order in the enclosing object by assuming the
// first array in the document is the features array. A document carrying
// another array-valued member ahead of "features" is therefore not
// supported.
//
// A Reader is not safe for concurrent use; independent Readers over
// independent streams are.
type Reader struct {
	r     *bufio.Reader
	state readerState
	first bool
	buf   bytes.Buffer
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r), state: beforeFeatures, first: true}
}

// Next returns the next feature. It returns io.EOF when the collection is
// exhausted, and keeps returning io.EOF on further calls. A framing or
// decode error terminates the sequence.
func (r *Reader) Next() (*geojson.Feature, error) {
	raw, err := r.next()
	if err != nil {
		return nil, err
	}
	var f geojson.Feature
	if err := f.UnmarshalJSON(raw); err != nil {
		r.state = afterFeatures
		return nil, err
	}
	return &f, nil
}

// Decode decodes the next feature into a caller-defined record type,
// flattening it first: the geometry member stays distinct, every property
// key becomes a top-level field. The io.EOF protocol is the same as Next's.
func (r *Reader) Decode(v interface{}) error {
	raw, err := r.next()
	if err != nil {
		return err
	}
	flat, err := flattenRecord(raw)
	if err != nil {
		r.state = afterFeatures
		return err
	}
	if err := json.Unmarshal(flat, v); err != nil {
		r.state = afterFeatures
		return errors.Wrap(err, "decoding record")
	}
	return nil
}

// next scans forward to the next element and returns its raw bytes.
func (r *Reader) next() ([]byte, error) {
	switch r.state {
	case afterFeatures:
		return nil, io.EOF
	case beforeFeatures:
		// Skip ahead to the opening bracket of the first array.
		for {
			b, err := r.r.ReadByte()
			if err == io.EOF {
				r.state = afterFeatures
				return nil, io.EOF
			}
			if err != nil {
				r.state = afterFeatures
				return nil, errors.Wrap(err, "scanning for features array")
			}
			if b == '[' {
				r.state = duringFeatures
				break
			}
		}
	}

	ch, err := r.nextByte()
	if err != nil {
		r.state = afterFeatures
		if err == io.EOF {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "features array not closed")
		}
		return nil, errors.Wrap(err, "reading features array")
	}

	if r.first {
		r.first = false
		if ch == ']' {
			r.state = afterFeatures
			return nil, io.EOF
		}
		return r.consumeValue(ch)
	}
	switch ch {
	case ']':
		r.state = afterFeatures
		return nil, io.EOF
	case ',':
		ch, err = r.nextByte()
		if err != nil {
			r.state = afterFeatures
			if err == io.EOF {
				return nil, errors.Wrap(io.ErrUnexpectedEOF, "features array not closed")
			}
			return nil, errors.Wrap(err, "reading features array")
		}
		return r.consumeValue(ch)
	default:
		r.state = afterFeatures
		return nil, &FramingError{State: duringFeatures.String(), Byte: ch}
	}
}

// consumeValue consumes exactly one JSON value whose first byte is ch,
// returning its raw bytes. Just find the matching closing bracket; the JSON
// decoder worries about whether everything in between is valid.
func (r *Reader) consumeValue(ch byte) ([]byte, error) {
	r.buf.Reset()
	switch ch {
	case '{', '[':
		r.buf.WriteByte(ch)
		depth := 1
		for depth > 0 {
			b, err := r.r.ReadByte()
			if err != nil {
				r.state = afterFeatures
				return nil, errors.Wrap(io.ErrUnexpectedEOF, "inside feature")
			}
			r.buf.WriteByte(b)
			switch b {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			case '"':
				if err := slurpQuoted(r.r, &r.buf); err != nil {
					r.state = afterFeatures
					return nil, errors.Wrap(io.ErrUnexpectedEOF, "inside feature")
				}
			}
		}
	case '"':
		r.buf.WriteByte(ch)
		if err := slurpQuoted(r.r, &r.buf); err != nil {
			r.state = afterFeatures
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "inside feature")
		}
	default:
		// A bare scalar: number, true, false or null.
		r.buf.WriteByte(ch)
		for {
			b, err := r.r.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				r.state = afterFeatures
				return nil, errors.Wrap(err, "inside feature")
			}
			if b == ',' || b == ']' || b == '}' || isSpace(b) {
				x.Check(r.r.UnreadByte())
				break
			}
			r.buf.WriteByte(b)
		}
	}
	out := make([]byte, r.buf.Len())
	copy(out, r.buf.Bytes())
	return out, nil
}

// nextByte ignores any number of spaces that may precede a byte.
func (r *Reader) nextByte() (byte, error) {
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(b) {
			return b, nil
		}
	}
}

func slurpQuoted(r *bufio.Reader, out *bytes.Buffer) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		out.WriteByte(b)

		if b == '\\' {
			// Pick one more byte.
			esc, err := r.ReadByte()
			if err != nil {
				return err
			}
			out.WriteByte(esc)
			continue
		}
		if b == '"' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
