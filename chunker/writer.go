/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package chunker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/geojson"
)

type writerState int

const (
	stateNew writerState = iota
	stateForeignMembers
	stateFeatures
	stateFinished
)

func (s writerState) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateForeignMembers:
		return "writing foreign members"
	case stateFeatures:
		return "writing features"
	case stateFinished:
		return "finished"
	default:
		return "unknown state"
	}
}

// StateError reports a writer operation that is not legal in its current
// state: a foreign member after the first feature, a write after Close, or
// a double Close.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("chunker: %s not allowed on a writer that is %s", e.Op, e.State)
}

// Writer emits a FeatureCollection one feature at a time. It writes the
// document framing lazily: nothing reaches the underlying stream until the
// first write, and Close emits the closing syntax. Foreign members can only
// be written before the first feature.
//
// Go has no destructors, so the caller must call Close on every path;
// "defer w.Close()" after NewWriter is the usual form. Close on a writer
// that was never written to still produces a complete, valid, empty
// collection.
//
// A Writer is not safe for concurrent use; independent Writers over
// independent streams are.
type Writer struct {
	w     io.Writer
	state writerState
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFeature writes one feature, emitting the opening framing first when
// needed.
func (w *Writer) WriteFeature(f *geojson.Feature) error {
	raw, err := f.MarshalJSON()
	if err != nil {
		return err
	}
	return w.writeRecord(raw)
}

// Encode writes a caller-defined record: v's serialized form must contain a
// "geometry" member, which stays distinct, while every other member is
// repacked under "properties".
func (w *Writer) Encode(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	raw, err := expandRecord(data)
	if err != nil {
		return err
	}
	return w.writeRecord(raw)
}

func (w *Writer) writeRecord(raw []byte) error {
	switch w.state {
	case stateNew:
		if err := w.emit(`{"type":"FeatureCollection","features":[`); err != nil {
			return err
		}
	case stateForeignMembers:
		if err := w.emit(`,"features":[`); err != nil {
			return err
		}
	case stateFeatures:
		if err := w.emit(`,`); err != nil {
			return err
		}
	case stateFinished:
		return &StateError{Op: "writing a feature", State: w.state.String()}
	}
	w.state = stateFeatures
	return w.emitBytes(raw)
}

// WriteForeignMember writes one foreign member of the collection object.
// It is legal only before the first feature; key must be outside the RFC
// 7946 vocabulary.
func (w *Writer) WriteForeignMember(key string, value interface{}) error {
	switch w.state {
	case stateFeatures, stateFinished:
		return &StateError{Op: fmt.Sprintf("writing foreign member %q", key), State: w.state.String()}
	}
	if geojson.IsDefinedMember(key) {
		return errors.Errorf("chunker: %q is a defined GeoJSON member, not a foreign member", key)
	}
	k, err := json.Marshal(key)
	if err != nil {
		return errors.Wrapf(err, "encoding foreign member key %q", key)
	}
	val, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding foreign member %q", key)
	}
	if w.state == stateNew {
		if err := w.emit(`{"type":"FeatureCollection"`); err != nil {
			return err
		}
		w.state = stateForeignMembers
	}
	if err := w.emit(`,`); err != nil {
		return err
	}
	if err := w.emitBytes(k); err != nil {
		return err
	}
	if err := w.emit(`:`); err != nil {
		return err
	}
	return w.emitBytes(val)
}

// Close emits the closing framing exactly once. A second Close, like a
// write after Close, is a StateError.
func (w *Writer) Close() error {
	switch w.state {
	case stateNew:
		if err := w.emit(`{"type":"FeatureCollection","features":[`); err != nil {
			return err
		}
	case stateForeignMembers:
		if err := w.emit(`,"features":[`); err != nil {
			return err
		}
	case stateFinished:
		return &StateError{Op: "close", State: w.state.String()}
	}
	w.state = stateFinished
	return w.emit(`]}`)
}

func (w *Writer) emit(s string) error {
	_, err := io.WriteString(w.w, s)
	return errors.Wrap(err, "writing feature collection")
}

func (w *Writer) emitBytes(b []byte) error {
	_, err := w.w.Write(b)
	return errors.Wrap(err, "writing feature collection")
}
