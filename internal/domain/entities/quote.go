package entities

import "time"

// QuoteStatus represents the stored quote lifecycle.
//
// "expired" is never written to storage: a quote past its deadline keeps its
// stored pending status and only reads back as expired (EffectiveStatus).
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteValidityDays is how long a freshly minted quote stays open.
const QuoteValidityDays = 30

// Default contract terms stamped on every quote.
const (
	DefaultInitialTermMonths    = 24
	DefaultRenewalPeriodMonths  = 12
	DefaultNonRenewalNoticeDays = 90
)

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// DemoCustomer is the fixed identity stamped on quotes in this demo portal.
func DemoCustomer() CustomerInfo {
	return CustomerInfo{
		Name:    "Alex Carter",
		Email:   "alex.carter@example.com",
		Company: "Example Networks",
	}
}

// Signature records who resolved a pending quote. It is present iff the quote
// status is accepted or declined.
type Signature struct {
	SignedBy      string    `json:"signed_by"`
	SignedByEmail string    `json:"signed_by_email"`
	SignedAt      time.Time `json:"signed_at"`
}

type ContractTerms struct {
	InitialTermMonths    int `json:"initial_term_months"`
	RenewalPeriodMonths  int `json:"renewal_period_months"`
	NonRenewalNoticeDays int `json:"non_renewal_notice_days"`
}

func DefaultContractTerms() ContractTerms {
	return ContractTerms{
		InitialTermMonths:    DefaultInitialTermMonths,
		RenewalPeriodMonths:  DefaultRenewalPeriodMonths,
		NonRenewalNoticeDays: DefaultNonRenewalNoticeDays,
	}
}

// Quote is a priced offer minted from cart contents.
//
// Invariants:
//   - ID and CreatedAt are immutable after minting.
//   - Once Status leaves pending it never returns to pending.
//   - FinalTotals equals the sum of the items' TotalPrice at creation.
type Quote struct {
	ID          string        `json:"id"`
	QuoteNumber string        `json:"quote_number"`
	Items       []LineItem    `json:"items"`
	Status      QuoteStatus   `json:"status"`
	FinalTotals Money         `json:"final_totals"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Customer    CustomerInfo  `json:"customer_info"`
	Signature   *Signature    `json:"signature,omitempty"`
	Terms       ContractTerms `json:"terms"`
}

// SumItemTotals folds the quantity-aware line totals into a single Money.
func SumItemTotals(items []LineItem) Money {
	var total Money
	for _, li := range items {
		total = total.Add(li.TotalPrice)
	}
	return total
}

// Expired reports whether the validity deadline has passed.
func (q Quote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && now.After(q.ExpiresAt)
}

// EffectiveStatus is the display status: a stored-pending quote past its
// deadline reads as expired, everything else reads as stored.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.Status == QuoteStatusPending && q.Expired(now) {
		return QuoteStatusExpired
	}
	return q.Status
}

// ItemsNeedingConfiguration lists the names of line items that still have
// configuration work outstanding.
func (q Quote) ItemsNeedingConfiguration() []string {
	var pending []string
	for _, li := range q.Items {
		if li.NeedsConfiguration && li.ConfigurationProgress < 100 {
			pending = append(pending, li.Name)
		}
	}
	return pending
}
