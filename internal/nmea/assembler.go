package nmea

import (
	"fmt"
	"strings"
)

// Message is a complete armored payload reassembled from one or more
// sentences.
type Message struct {
	Payload   string
	FillBits  int
	Channel   string
	Own       bool
	Sentences []Sentence
}

// Assembler joins multi-sentence messages. Fragments of one message must
// arrive in order; messages with different sequential ids may interleave.
// An Assembler is not safe for concurrent use.
type Assembler struct {
	pending map[string][]Sentence
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{pending: make(map[string][]Sentence)}
}

// Add feeds one sentence. It returns the message and true once the
// sentence completes one. A fragment that does not continue the pending
// message for its id drops that message and returns ErrFragment; if the
// fragment is itself a first fragment it starts a new message.
func (a *Assembler) Add(s Sentence) (Message, bool, error) {
	if s.Fragments == 1 {
		return assemble([]Sentence{s}), true, nil
	}
	key := s.MessageID
	pending, ok := a.pending[key]

	if s.Fragment == 1 {
		a.pending[key] = []Sentence{s}
		if ok {
			return Message{}, false, fmt.Errorf("%w: message id %q restarted after %d of %d fragments",
				ErrFragment, key, len(pending), pending[0].Fragments)
		}
		return Message{}, false, nil
	}

	if !ok {
		return Message{}, false, fmt.Errorf("%w: fragment %d of %d for message id %q without a first fragment",
			ErrFragment, s.Fragment, s.Fragments, key)
	}
	first := pending[0]
	if s.Fragments != first.Fragments || s.Fragment != len(pending)+1 {
		delete(a.pending, key)
		return Message{}, false, fmt.Errorf("%w: got fragment %d of %d for message id %q, expected %d of %d",
			ErrFragment, s.Fragment, s.Fragments, key, len(pending)+1, first.Fragments)
	}

	pending = append(pending, s)
	if len(pending) < first.Fragments {
		a.pending[key] = pending
		return Message{}, false, nil
	}
	delete(a.pending, key)
	return assemble(pending), true, nil
}

// Pending returns the number of incomplete messages held.
func (a *Assembler) Pending() int { return len(a.pending) }

// Reset drops every incomplete message.
func (a *Assembler) Reset() {
	clear(a.pending)
}

func assemble(sentences []Sentence) Message {
	var b strings.Builder
	for _, s := range sentences {
		b.WriteString(s.Payload)
	}
	last := sentences[len(sentences)-1]
	return Message{
		Payload:   b.String(),
		FillBits:  last.FillBits,
		Channel:   sentences[0].Channel,
		Own:       sentences[0].Own(),
		Sentences: sentences,
	}
}
