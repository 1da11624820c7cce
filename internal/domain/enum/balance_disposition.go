package enum

// BalanceDisposition records the fate of a partial payout's unpaid
// remainder. It is only ever set on partial payouts; a full payout
// carries the empty value.
type BalanceDisposition string

const (
	// BalanceDeferred means the remainder is still owed to the
	// consignor and will be settled outside the engine.
	BalanceDeferred BalanceDisposition = "deferred"
	// BalanceForgiven means the consignor waived the remainder; no
	// future period may re-surface it.
	BalanceForgiven BalanceDisposition = "forgiven"
)

// Valid reports whether the disposition is one of the two accepted
// variants. The empty value is not valid for a partial payout.
func (d BalanceDisposition) Valid() bool {
	return d == BalanceDeferred || d == BalanceForgiven
}
