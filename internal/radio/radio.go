// Package radio decodes the 19-bit SOTDMA and ITDMA communication state
// trailing Class A position reports and base station reports.
package radio

import (
	"errors"
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
)

// ErrUnsupportedMessageType is returned for types that carry no radio status.
var ErrUnsupportedMessageType = errors.New("no radio status layout for message type")

// SyncState is the 2-bit synchronisation state shared by both layouts.
type SyncState uint8

const (
	UtcDirect SyncState = iota
	UtcIndirect
	BaseStation
	PeerStation
)

func (s SyncState) String() string {
	switch s {
	case UtcDirect:
		return "UTC direct"
	case UtcIndirect:
		return "UTC indirect"
	case BaseStation:
		return "base station"
	case PeerStation:
		return "peer station"
	default:
		return fmt.Sprintf("sync state(%d)", uint8(s))
	}
}

// Status is either Sotdma or Itdma.
type Status interface {
	Sync() SyncState
	isStatus()
}

// Sotdma is the self-organised TDMA communication state.
type Sotdma struct {
	SyncState   SyncState
	SlotTimeout uint8
	SubMessage  SubMessage
}

// Itdma is the incremental TDMA communication state.
type Itdma struct {
	SyncState     SyncState
	SlotIncrement uint16
	NumberOfSlots uint8
	KeepFlag      bool
}

func (s Sotdma) Sync() SyncState { return s.SyncState }
func (s Itdma) Sync() SyncState  { return s.SyncState }
func (Sotdma) isStatus()         {}
func (Itdma) isStatus()          {}

// SubMessage is the 14-bit SOTDMA payload; its meaning depends on the slot
// timeout.
type SubMessage interface {
	isSubMessage()
}

type (
	// SlotOffset is sent when the slot timeout is 0.
	SlotOffset uint16
	// SlotNumber is sent for slot timeouts 2, 4 and 6.
	SlotNumber uint16
	// ReceivedStations is sent for slot timeouts 3, 5 and 7.
	ReceivedStations uint16
)

// UtcTime is sent when the slot timeout is 1.
type UtcTime struct {
	Hour   uint8
	Minute uint8
}

func (SlotOffset) isSubMessage()       {}
func (SlotNumber) isSubMessage()       {}
func (ReceivedStations) isSubMessage() {}
func (UtcTime) isSubMessage()          {}

// Parse reads the communication state using the layout message type
// selects.
func Parse(c *bitstream.Cursor, messageType uint8) (Status, error) {
	switch messageType {
	case 1, 2, 4, 11:
		return parseSotdma(c)
	case 3:
		return parseItdma(c)
	default:
		return nil, fmt.Errorf("%w %d", ErrUnsupportedMessageType, messageType)
	}
}

func parseSotdma(c *bitstream.Cursor) (Status, error) {
	sync, err := c.Uint(2)
	if err != nil {
		return nil, fmt.Errorf("sync state: %w", err)
	}
	timeout, err := c.Uint(3)
	if err != nil {
		return nil, fmt.Errorf("slot timeout: %w", err)
	}
	sub, err := c.Uint(14)
	if err != nil {
		return nil, fmt.Errorf("sub message: %w", err)
	}
	return Sotdma{
		SyncState:   SyncState(sync),
		SlotTimeout: uint8(timeout),
		SubMessage:  subMessage(uint8(timeout), sub),
	}, nil
}

func subMessage(timeout uint8, raw uint32) SubMessage {
	switch timeout {
	case 0:
		return SlotOffset(raw)
	case 1:
		return UtcTime{
			Hour:   uint8(raw >> 9 & 0x1F),
			Minute: uint8(raw >> 2 & 0x7F),
		}
	case 2, 4, 6:
		return SlotNumber(raw)
	default:
		return ReceivedStations(raw)
	}
}

func parseItdma(c *bitstream.Cursor) (Status, error) {
	sync, err := c.Uint(2)
	if err != nil {
		return nil, fmt.Errorf("sync state: %w", err)
	}
	increment, err := c.Uint(13)
	if err != nil {
		return nil, fmt.Errorf("slot increment: %w", err)
	}
	slots, err := c.Uint(3)
	if err != nil {
		return nil, fmt.Errorf("number of slots: %w", err)
	}
	keep, err := c.Bool()
	if err != nil {
		return nil, fmt.Errorf("keep flag: %w", err)
	}
	return Itdma{
		SyncState:     SyncState(sync),
		SlotIncrement: uint16(increment),
		NumberOfSlots: uint8(slots),
		KeepFlag:      keep,
	}, nil
}
