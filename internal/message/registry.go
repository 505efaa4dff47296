package message

import (
	"fmt"
	"sort"
	"sync"

	"gitlab.com/d21d3q/goais/internal/bitstream"
)

// Registry maps message type codes to decoders. It is safe for concurrent
// use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[uint8]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[uint8]Decoder)}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the shared registry holding every built-in decoder.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		r.Register(PositionDecoder{}, 1, 2, 3)
		r.Register(BaseStationDecoder{}, 4, 11)
		r.Register(StaticDataDecoder{}, 24)
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register binds dec to each of the given type codes, replacing any earlier
// binding.
func (r *Registry) Register(dec Decoder, types ...uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		r.decoders[t] = dec
	}
}

// Lookup returns the decoder bound to a type code.
func (r *Registry) Lookup(msgType uint8) (Decoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dec, ok := r.decoders[msgType]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, msgType)
	}
	return dec, nil
}

// Types lists the registered type codes in ascending order.
func (r *Registry) Types() []uint8 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]uint8, 0, len(r.decoders))
	for t := range r.decoders {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Decode peeks the type code and runs the matching decoder.
func (r *Registry) Decode(buf bitstream.Buffer) (Message, error) {
	msgType, err := PeekType(buf)
	if err != nil {
		return nil, err
	}
	dec, err := r.Lookup(msgType)
	if err != nil {
		return nil, err
	}
	return dec.Parse(buf)
}
