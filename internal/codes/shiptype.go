package codes

import "fmt"

// ShipType is the 8-bit ship and cargo type code.
type ShipType uint8

const (
	Fishing          ShipType = 30
	Towing           ShipType = 31
	TowingLarge      ShipType = 32
	Dredging         ShipType = 33
	DivingOps        ShipType = 34
	MilitaryOps      ShipType = 35
	Sailing          ShipType = 36
	PleasureCraft    ShipType = 37
	PilotVessel      ShipType = 50
	SearchAndRescue  ShipType = 51
	Tug              ShipType = 52
	PortTender       ShipType = 53
	AntiPollution    ShipType = 54
	LawEnforcement   ShipType = 55
	MedicalTransport ShipType = 58
	NonCombatant     ShipType = 59
)

// Category groups ship type codes whose second digit only qualifies hazard.
type Category uint8

const (
	CategoryReserved Category = iota
	CategoryWingInGround
	CategorySpecial
	CategoryHighSpeedCraft
	CategoryPassenger
	CategoryCargo
	CategoryTanker
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryReserved:       "reserved",
	CategoryWingInGround:   "wing in ground",
	CategorySpecial:        "special",
	CategoryHighSpeedCraft: "high speed craft",
	CategoryPassenger:      "passenger",
	CategoryCargo:          "cargo",
	CategoryTanker:         "tanker",
	CategoryOther:          "other",
}

func (c Category) String() string { return categoryNames[c] }

var shipTypeNames = map[ShipType]string{
	Fishing:          "fishing",
	Towing:           "towing",
	TowingLarge:      "towing, length exceeds 200m or breadth exceeds 25m",
	Dredging:         "dredging or underwater ops",
	DivingOps:        "diving ops",
	MilitaryOps:      "military ops",
	Sailing:          "sailing",
	PleasureCraft:    "pleasure craft",
	PilotVessel:      "pilot vessel",
	SearchAndRescue:  "search and rescue vessel",
	Tug:              "tug",
	PortTender:       "port tender",
	AntiPollution:    "anti-pollution equipment",
	LawEnforcement:   "law enforcement",
	MedicalTransport: "medical transport",
	NonCombatant:     "noncombatant ship",
}

// Category returns the broad class of the ship type.
func (s ShipType) Category() Category {
	switch {
	case s >= 20 && s <= 29:
		return CategoryWingInGround
	case s >= 30 && s <= 37, s >= 50 && s <= 59:
		return CategorySpecial
	case s >= 40 && s <= 49:
		return CategoryHighSpeedCraft
	case s >= 60 && s <= 69:
		return CategoryPassenger
	case s >= 70 && s <= 79:
		return CategoryCargo
	case s >= 80 && s <= 89:
		return CategoryTanker
	case s >= 90 && s <= 99:
		return CategoryOther
	default:
		return CategoryReserved
	}
}

// Hazard returns the hazard category digit (0 = all ships of this type,
// 1-4 = hazardous category A-D) for category-based codes.
func (s ShipType) Hazard() (uint8, bool) {
	switch s.Category() {
	case CategoryWingInGround, CategoryHighSpeedCraft, CategoryPassenger,
		CategoryCargo, CategoryTanker, CategoryOther:
		return uint8(s % 10), true
	default:
		return 0, false
	}
}

func (s ShipType) String() string {
	if name, ok := shipTypeNames[s]; ok {
		return name
	}
	cat := s.Category()
	if cat == CategoryReserved || cat == CategorySpecial {
		return fmt.Sprintf("reserved(%d)", uint8(s))
	}
	if h, _ := s.Hazard(); h >= 1 && h <= 4 {
		return fmt.Sprintf("%s, hazardous category %c", cat, 'A'+h-1)
	}
	return cat.String()
}

// ParseShipType decodes the 8-bit ship type. 0 is "not available".
func ParseShipType(raw uint32) (*ShipType, error) {
	switch {
	case raw == 0:
		return nil, nil
	case raw <= 0xFF:
		s := ShipType(raw)
		return &s, nil
	default:
		return nil, fmt.Errorf("ship type %d: %w", raw, ErrUnknownValue)
	}
}
