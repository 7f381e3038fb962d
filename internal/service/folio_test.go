package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderFolio_Shape(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	folio := NewOrderFolio(now)

	assert.Regexp(t, `^OC-2026-\d{6}$`, folio)
}

func TestNewMovementFolio_Shape(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	folio := NewMovementFolio(now)

	assert.Regexp(t, `^ALM-2026-\d{3}$`, folio)
}

func TestGenerateFolio_SuffixIsTrailingMillis(t *testing.T) {
	now := time.UnixMilli(1767225601234) // ...601234
	folio := GenerateFolio("OC", 6, now.UTC())

	assert.Equal(t, "OC-2026-601234", folio)
}

// Two timestamps exactly one truncation window apart yield the same folio.
// The identifier is display-oriented and carries no uniqueness guarantee.
func TestGenerateFolio_CollisionAcrossTruncationWindow(t *testing.T) {
	a := time.UnixMilli(1767225601234).UTC()
	b := a.Add(1_000_000 * time.Millisecond) // +10^6 ms, same trailing 6 digits

	assert.Equal(t, GenerateFolio("OC", 6, a), GenerateFolio("OC", 6, b))
}
