package request

// CreatePayoutRequest represents an operator's request to record a
// payout. CustomAmount makes the payout partial; PartialReason and
// BalanceDisposition are then required.
type CreatePayoutRequest struct {
	Notes              *string  `json:"notes"`
	CustomAmount       *float64 `json:"custom_amount" binding:"omitempty,gt=0"`
	PartialReason      *string  `json:"partial_reason"`
	BalanceDisposition string   `json:"balance_disposition" binding:"omitempty,oneof=deferred forgiven"`
}
