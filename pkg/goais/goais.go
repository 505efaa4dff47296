// Package goais decodes AIS payloads and NMEA sentence streams into typed
// message records.
package goais

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"gitlab.com/d21d3q/goais/internal/armor"
	"gitlab.com/d21d3q/goais/internal/message"
	"gitlab.com/d21d3q/goais/internal/nmea"
	internalopts "gitlab.com/d21d3q/goais/internal/options"
)

// Result captures the outcome of decoding one message.
type Result struct {
	Type     uint8
	Name     string
	MMSI     uint32
	Payload  string
	FillBits int

	// Line is the 1-based input line that completed the message, or 0 when
	// decoding a bare payload.
	Line int

	Message message.Message
	Fields  map[string]any

	// Err is set by the sentence helpers for lines that failed.
	Err error
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	out, err := r.JSON("  ")
	if err != nil {
		return fmt.Sprintf("type:%d name:%s mmsi:%d (marshal error: %v)", r.Type, r.Name, r.MMSI, err)
	}
	return out
}

// JSON renders the result as JSON, indented with indent when it is non-empty.
func (r Result) JSON(indent string) (string, error) {
	summary := map[string]any{
		"payload": r.Payload,
		"fill":    r.FillBits,
	}
	if r.Type != 0 {
		summary["type"] = r.Type
	}
	if r.Message != nil {
		summary["name"] = r.Name
		summary["mmsi"] = r.MMSI
	}
	if r.Line > 0 {
		summary["line"] = r.Line
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	if r.Err != nil {
		summary["error"] = r.Err.Error()
	}
	// Armored payloads use '<', '>' and '&', which must stay literal.
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(summary); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// Decode unarmors the payload and runs the decoder registered for its type.
func Decode(ctx context.Context, payload string, fillBits int) (Result, error) {
	return DecodeWithOptions(ctx, payload, fillBits, DecodeOptions{})
}

// DecodeWithOptions decodes the payload with custom options.
func DecodeWithOptions(ctx context.Context, payload string, fillBits int, opts DecodeOptions) (Result, error) {
	ctx, reg := opts.toInternal(ctx)
	return decode(ctx, reg, payload, fillBits)
}

func decode(ctx context.Context, reg *message.Registry, payload string, fillBits int) (Result, error) {
	log := internalopts.Logger(ctx).WithFields(logrus.Fields{"payload": payload, "fill": fillBits})
	result := Result{Payload: payload, FillBits: fillBits}

	buf, err := armor.Unarmor(payload, fillBits)
	if err != nil {
		return result, err
	}
	if result.Type, err = message.PeekType(buf); err != nil {
		return result, err
	}
	msg, err := reg.Decode(buf)
	if err != nil {
		log.WithError(err).Debug("decode failed")
		return result, err
	}
	h := msg.Header()
	result.Name = msg.Name()
	result.MMSI = h.MMSI
	result.Message = msg
	result.Fields = msg.Fields()
	log.WithFields(logrus.Fields{"type": h.Type, "mmsi": h.MMSI}).Debug("decoded message")
	return result, nil
}

// DecodeSentences decodes a batch of NMEA lines. Every completed message
// and every failed line yields one Result; failures are recorded in
// Result.Err and do not stop the batch. Blank lines and lines starting
// with '#' are ignored. When ctx is done the batch is cut short and the
// results gathered so far are returned with ctx's error.
func DecodeSentences(ctx context.Context, lines []string, opts DecodeOptions) ([]Result, error) {
	var results []Result
	err := ScanSentences(ctx, strings.NewReader(strings.Join(lines, "\n")), opts, func(r Result) error {
		results = append(results, r)
		return nil
	})
	return results, err
}

// ScanSentences reads NMEA lines from r and calls fn for every completed
// message and every failed line. Scanning stops early when fn returns an
// error, which is then returned, or when ctx is done.
func ScanSentences(ctx context.Context, r io.Reader, opts DecodeOptions, fn func(Result) error) error {
	ctx, reg := opts.toInternal(ctx)
	filter := opts.filter()
	log := internalopts.Logger(ctx)
	asm := nmea.NewAssembler()

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, ok := decodeLine(ctx, reg, asm, line)
		if !ok {
			continue
		}
		result.Line = lineNo
		if result.Err != nil {
			log.WithError(result.Err).WithField("line", lineNo).Debug("skipping sentence")
		} else if !filter.Allows(result.Type) {
			continue
		}
		if err := fn(result); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read sentences: %w", err)
	}
	if n := asm.Pending(); n > 0 {
		log.WithField("pending", n).Debug("input ended with incomplete messages")
	}
	return nil
}

func decodeLine(ctx context.Context, reg *message.Registry, asm *nmea.Assembler, line string) (Result, bool) {
	s, err := nmea.ParseSentence(line)
	if err != nil {
		return Result{Err: err}, true
	}
	msg, complete, err := asm.Add(s)
	if err != nil {
		return Result{Payload: s.Payload, FillBits: s.FillBits, Err: err}, true
	}
	if !complete {
		return Result{}, false
	}
	result, err := decode(ctx, reg, msg.Payload, msg.FillBits)
	result.Err = err
	return result, true
}
