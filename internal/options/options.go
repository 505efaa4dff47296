package options

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

// WithLogger stores the provided entry inside the context.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	if entry == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, entry)
}

// Logger retrieves the entry from context. Without one it returns an entry
// that discards everything.
func Logger(ctx context.Context) *logrus.Entry {
	if v := ctx.Value(contextKey{}); v != nil {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return discard
}

// TypeFilter is a set of accepted AIS message type codes. A nil filter
// accepts everything.
type TypeFilter map[uint8]bool

// Allows reports whether msgType passes the filter.
func (f TypeFilter) Allows(msgType uint8) bool {
	return f == nil || f[msgType]
}

// Types lists the accepted codes in ascending order.
func (f TypeFilter) Types() []uint8 {
	types := make([]uint8, 0, len(f))
	for t := range f {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ParseTypeFilter parses a comma separated list of type codes and ranges
// such as "1-3,5,24".
func ParseTypeFilter(input string) (TypeFilter, error) {
	clean := stripWhitespace(input)
	if clean == "" {
		return nil, nil
	}
	filter := make(TypeFilter)
	for _, item := range strings.Split(clean, ",") {
		lo, hi, isRange := strings.Cut(item, "-")
		first, err := parseType(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = parseType(hi); err != nil {
				return nil, err
			}
			if last < first {
				return nil, fmt.Errorf("message type range %q is reversed", item)
			}
		}
		for t := first; t <= last; t++ {
			filter[uint8(t)] = true
		}
	}
	return filter, nil
}

func parseType(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid message type %q: %w", s, err)
	}
	if v < 1 || v > 63 {
		return 0, fmt.Errorf("message type %d outside 1-63", v)
	}
	return v, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
