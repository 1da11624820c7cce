package service

import (
	"time"

	"github.com/sellbridge/consign-api/internal/domain/entity"
)

// Period is a reconciliation window. Sales belong to the period when
// their completion timestamp falls in (Start, End]: strictly after the
// previous payout so already-paid sales are never billed twice.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.After(p.Start) && !t.After(p.End)
}

// ResolvePeriod determines the open reconciliation window for a
// consignor: from their most recent payout (or all of history when
// they have never been paid) up to now.
func ResolvePeriod(lastPayout *entity.Payout, now time.Time) Period {
	p := Period{End: now}
	if lastPayout != nil {
		p.Start = lastPayout.PaidAt
	}
	return p
}
