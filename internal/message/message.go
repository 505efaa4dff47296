// Package message decodes AIS message payloads into typed records. Each
// message type has its own Decoder; choosing one by type code is done
// through a Registry outside the decoders themselves.
package message

import (
	"errors"
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
)

var (
	// ErrUnknownMessagePart is returned for a type 24 part number other than A or B.
	ErrUnknownMessagePart = errors.New("unknown message part")
	// ErrUnsupportedType is returned when no decoder is registered for a type.
	ErrUnsupportedType = errors.New("unsupported message type")
	// ErrTypeMismatch is returned when a decoder is handed a foreign type code.
	ErrTypeMismatch = errors.New("message type does not match decoder")
)

// Decoder turns a complete message bit buffer into a Message.
type Decoder interface {
	Name() string
	Parse(buf bitstream.Buffer) (Message, error)
}

// Message is a fully decoded record. Records are never partially populated.
type Message interface {
	Name() string
	Header() Header
	// Fields flattens the record for display; absent values are omitted.
	Fields() map[string]any
}

func wrap(decoder, field string, err error) error {
	return fmt.Errorf("%s: %s: %w", decoder, field, err)
}

func expectType(decoder string, h Header, allowed ...uint8) error {
	for _, t := range allowed {
		if h.Type == t {
			return nil
		}
	}
	return wrap(decoder, "message type", fmt.Errorf("%w: got %d", ErrTypeMismatch, h.Type))
}

func setIf[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}
