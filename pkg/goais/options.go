package goais

import (
	"context"

	"github.com/sirupsen/logrus"

	"gitlab.com/d21d3q/goais/internal/message"
	internalopts "gitlab.com/d21d3q/goais/internal/options"
)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// Registry selects decoders by type code; nil uses the built-in set.
	Registry *message.Registry
	// Logger receives debug output; nil keeps any logger already carried by
	// the context.
	Logger *logrus.Entry
	// Types restricts the sentence helpers to these message types. Empty
	// accepts every type.
	Types []uint8
}

func (opts DecodeOptions) toInternal(ctx context.Context) (context.Context, *message.Registry) {
	ctx = internalopts.WithLogger(ctx, opts.Logger)
	reg := opts.Registry
	if reg == nil {
		reg = message.DefaultRegistry()
	}
	return ctx, reg
}

func (opts DecodeOptions) filter() internalopts.TypeFilter {
	if len(opts.Types) == 0 {
		return nil
	}
	filter := make(internalopts.TypeFilter, len(opts.Types))
	for _, t := range opts.Types {
		filter[t] = true
	}
	return filter
}
