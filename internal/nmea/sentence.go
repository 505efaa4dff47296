// Package nmea parses NMEA 0183 AIVDM/AIVDO sentences and reassembles
// multi-sentence messages into a single armored payload.
package nmea

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned for lines that are not VDM/VDO sentences.
	ErrMalformed = errors.New("malformed sentence")
	// ErrChecksum is returned when the *hh checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrFragment is returned for out-of-order or conflicting fragments.
	ErrFragment = errors.New("fragment sequence broken")
)

// Sentence is one parsed !xxVDM or !xxVDO line.
type Sentence struct {
	Talker    string // "AI", "BS", ...
	Formatter string // "VDM" or "VDO"
	Fragments int    // total sentences in the message, 1-9
	Fragment  int    // 1-based index of this sentence
	MessageID string // sequential message id, empty for single sentences
	Channel   string
	Payload   string
	FillBits  int

	// HasChecksum reports whether the line carried a "*hh" suffix. A present
	// checksum has always been verified.
	HasChecksum bool
	Raw         string
}

// Own reports whether the sentence describes the receiving station itself.
func (s Sentence) Own() bool { return s.Formatter == "VDO" }

// ParseSentence parses a single line. Surrounding whitespace and an IEC
// 61162-450 tag block prefix are ignored.
func ParseSentence(line string) (Sentence, error) {
	raw := strings.TrimSpace(line)
	body := raw
	if strings.HasPrefix(body, `\`) {
		end := strings.IndexByte(body[1:], '\\')
		if end < 0 {
			return Sentence{}, fmt.Errorf("%w: unterminated tag block", ErrMalformed)
		}
		body = body[end+2:]
	}
	if !strings.HasPrefix(body, "!") {
		return Sentence{}, fmt.Errorf("%w: expected '!' prefix", ErrMalformed)
	}
	body = body[1:]

	s := Sentence{Raw: raw}
	if star := strings.LastIndexByte(body, '*'); star >= 0 {
		if err := verifyChecksum(body[:star], body[star+1:]); err != nil {
			return Sentence{}, err
		}
		body = body[:star]
		s.HasChecksum = true
	}

	parts := strings.Split(body, ",")
	if len(parts) != 7 {
		return Sentence{}, fmt.Errorf("%w: %d fields, want 7", ErrMalformed, len(parts))
	}
	tag := parts[0]
	if len(tag) != 5 || (tag[2:] != "VDM" && tag[2:] != "VDO") {
		return Sentence{}, fmt.Errorf("%w: unsupported sentence %q", ErrMalformed, tag)
	}
	s.Talker, s.Formatter = tag[:2], tag[2:]

	var err error
	if s.Fragments, err = digit(parts[1], 1, 9); err != nil {
		return Sentence{}, fmt.Errorf("%w: fragment count: %v", ErrMalformed, err)
	}
	if s.Fragment, err = digit(parts[2], 1, s.Fragments); err != nil {
		return Sentence{}, fmt.Errorf("%w: fragment number: %v", ErrMalformed, err)
	}
	if parts[3] != "" {
		if _, err := digit(parts[3], 0, 9); err != nil {
			return Sentence{}, fmt.Errorf("%w: sequential message id: %v", ErrMalformed, err)
		}
	}
	s.MessageID = parts[3]
	s.Channel = parts[4]
	s.Payload = parts[5]
	if s.FillBits, err = digit(parts[6], 0, 5); err != nil {
		return Sentence{}, fmt.Errorf("%w: fill bits: %v", ErrMalformed, err)
	}
	return s, nil
}

func digit(field string, lo, hi int) (int, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("%q is not a single digit", field)
	}
	v := int(field[0]) - '0'
	if v < lo || v > hi {
		return 0, fmt.Errorf("%q outside %d-%d", field, lo, hi)
	}
	return v, nil
}

// verifyChecksum XORs every byte between '!' and '*' against the hex suffix.
func verifyChecksum(covered, suffix string) error {
	if len(suffix) != 2 {
		return fmt.Errorf("%w: checksum %q", ErrMalformed, suffix)
	}
	want, err := strconv.ParseUint(suffix, 16, 8)
	if err != nil {
		return fmt.Errorf("%w: checksum %q", ErrMalformed, suffix)
	}
	if sum := xor(covered); sum != byte(want) {
		return fmt.Errorf("%w: computed %02X, sentence says %s", ErrChecksum, sum, suffix)
	}
	return nil
}

// Checksum returns the two-digit hex checksum for the text between '!' and
// '*'.
func Checksum(covered string) string {
	return fmt.Sprintf("%02X", xor(covered))
}

func xor(s string) byte {
	var sum byte
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}
	return sum
}
