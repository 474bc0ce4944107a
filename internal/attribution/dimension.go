package attribution

import (
	"strings"

	"github.com/leadspring/attribution-go/internal/models"
)

// Dimension selects which attribution field records are grouped by.
type Dimension int

const (
	BySource Dimension = iota
	ByAd
)

// UnknownKey is the bucket for records carrying no value for the
// dimension being grouped; unattributable records are never dropped.
const UnknownKey = "unknown"

func (d Dimension) String() string {
	if d == ByAd {
		return "ad"
	}
	return "source"
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownKey
	}
	return s
}

func leadKey(l models.Lead, d Dimension) string {
	if d == ByAd {
		return orUnknown(l.AdID)
	}
	return orUnknown(l.UTMSource)
}

func costKey(c models.Cost, d Dimension) string {
	if d == ByAd {
		return orUnknown(c.AdID)
	}
	return orUnknown(c.UTMSource)
}

// dealOwnKey is the fallback when a deal's lead reference does not
// resolve; it looks only at the deal's own attribution fields.
func dealOwnKey(dl models.Deal, d Dimension) string {
	if d == ByAd {
		return orUnknown(dl.AdID)
	}
	return orUnknown(dl.UTMSource)
}
