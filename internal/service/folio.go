package service

import (
	"fmt"
	"strconv"
	"time"
)

// Folio prefixes and suffix widths. Purchase orders carry six trailing
// digits of the millisecond timestamp, warehouse movements three.
const (
	FolioPrefixOrder    = "OC"
	FolioPrefixMovement = "ALM"

	orderFolioDigits    = 6
	movementFolioDigits = 3
)

// GenerateFolio builds a display identifier of the shape
// <PREFIX>-<YEAR>-<SUFFIX>, where SUFFIX is the decimal Unix-millisecond
// timestamp truncated to its trailing digits. No backend coordination
// happens before display, so two folios generated within the same
// truncation window can collide; the value is free text at persistence time
// and users may overwrite it entirely.
func GenerateFolio(prefix string, digits int, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > digits {
		ms = ms[len(ms)-digits:]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), ms)
}

// NewOrderFolio returns a folio for a purchase order (OC-YYYY-NNNNNN).
func NewOrderFolio(now time.Time) string {
	return GenerateFolio(FolioPrefixOrder, orderFolioDigits, now)
}

// NewMovementFolio returns a folio for a warehouse movement (ALM-YYYY-NNN).
func NewMovementFolio(now time.Time) string {
	return GenerateFolio(FolioPrefixMovement, movementFolioDigits, now)
}
