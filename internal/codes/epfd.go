package codes

import "fmt"

// Epfd identifies the electronic position fixing device.
type Epfd uint8

const (
	Gps                  Epfd = 1
	Glonass              Epfd = 2
	CombinedGpsGlonass   Epfd = 3
	LoranC               Epfd = 4
	Chayka               Epfd = 5
	IntegratedNavigation Epfd = 6
	Surveyed             Epfd = 7
	Galileo              Epfd = 8
)

var epfdNames = map[Epfd]string{
	Gps:                  "GPS",
	Glonass:              "GLONASS",
	CombinedGpsGlonass:   "combined GPS/GLONASS",
	LoranC:               "Loran-C",
	Chayka:               "Chayka",
	IntegratedNavigation: "integrated navigation system",
	Surveyed:             "surveyed",
	Galileo:              "Galileo",
}

func (e Epfd) String() string {
	if name, ok := epfdNames[e]; ok {
		return name
	}
	return fmt.Sprintf("epfd(%d)", uint8(e))
}

// ParseEpfd decodes the 4-bit EPFD field. 0 (undefined) and 15 (internal
// GNSS, not reported as a device) are absent.
func ParseEpfd(raw uint32) (*Epfd, error) {
	switch {
	case raw == 0 || raw == 15:
		return nil, nil
	case raw <= uint32(Galileo):
		e := Epfd(raw)
		return &e, nil
	default:
		return nil, fmt.Errorf("EPFD type %d: %w", raw, ErrUnknownValue)
	}
}
