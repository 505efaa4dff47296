package codes

import "fmt"

// NavigationStatus is the 4-bit navigational status of a Class A report.
type NavigationStatus uint8

const (
	UnderWayUsingEngine NavigationStatus = iota
	AtAnchor
	NotUnderCommand
	RestrictedManeuverability
	ConstrainedByDraught
	Moored
	Aground
	EngagedInFishing
	UnderWaySailing
)

const (
	PowerDrivenTowingAstern NavigationStatus = 11
	PowerDrivenPushingAhead NavigationStatus = 12
	AisSartActive           NavigationStatus = 14
)

var navStatusNames = [...]string{
	"under way using engine",
	"at anchor",
	"not under command",
	"restricted maneuverability",
	"constrained by her draught",
	"moored",
	"aground",
	"engaged in fishing",
	"under way sailing",
	"reserved for HSC",
	"reserved for WIG",
	"power-driven vessel towing astern",
	"power-driven vessel pushing ahead or towing alongside",
	"reserved",
	"AIS-SART active",
}

func (n NavigationStatus) String() string {
	if int(n) < len(navStatusNames) {
		return navStatusNames[n]
	}
	return fmt.Sprintf("navigation status(%d)", uint8(n))
}

// ParseNavigationStatus decodes the status nibble; 15 is "not defined".
func ParseNavigationStatus(raw uint32) (*NavigationStatus, error) {
	switch {
	case raw == 15:
		return nil, nil
	case raw < 15:
		n := NavigationStatus(raw)
		return &n, nil
	default:
		return nil, fmt.Errorf("navigation status %d: %w", raw, ErrUnknownValue)
	}
}

// Maneuver is the special maneuver indicator of a Class A report.
type Maneuver uint8

const (
	NoSpecialManeuver Maneuver = 1
	SpecialManeuver   Maneuver = 2
)

func (m Maneuver) String() string {
	switch m {
	case NoSpecialManeuver:
		return "no special maneuver"
	case SpecialManeuver:
		return "special maneuver"
	default:
		return fmt.Sprintf("maneuver(%d)", uint8(m))
	}
}

// ParseManeuver decodes the 2-bit indicator; 0 is "not available".
func ParseManeuver(raw uint32) (*Maneuver, error) {
	switch raw {
	case 0:
		return nil, nil
	case 1, 2:
		m := Maneuver(raw)
		return &m, nil
	default:
		return nil, fmt.Errorf("maneuver indicator %d: %w", raw, ErrUnknownValue)
	}
}
