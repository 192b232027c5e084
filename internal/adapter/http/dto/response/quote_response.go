package response

import (
	"time"

	"colohub/internal/domain/entities"
)

type MoneyResponse struct {
	OneTime   float64 `json:"one_time"`
	Recurring float64 `json:"recurring"`
}

func fromMoney(m entities.Money) MoneyResponse {
	return MoneyResponse{OneTime: m.OneTime, Recurring: m.Recurring}
}

type LineItemResponse struct {
	ID                    int64          `json:"id"`
	Name                  string         `json:"name"`
	Category              string         `json:"category"`
	Key                   string         `json:"key"`
	Qty                   int            `json:"qty"`
	UnitPrice             MoneyResponse  `json:"unit_price"`
	TotalPrice            MoneyResponse  `json:"total_price"`
	NeedsConfiguration    bool           `json:"needs_configuration"`
	Configuration         map[string]any `json:"configuration,omitempty"`
	ConfigStatus          string         `json:"config_status"`
	CompletedCount        int            `json:"completed_count"`
	TotalRequired         int            `json:"total_required"`
	ConfigurationProgress int            `json:"configuration_progress"`
	ConfiguredAt          *time.Time     `json:"configured_at,omitempty"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                    li.ID,
		Name:                  li.Name,
		Category:              string(li.Category),
		Key:                   li.Key,
		Qty:                   li.Qty,
		UnitPrice:             fromMoney(li.UnitPrice),
		TotalPrice:            fromMoney(li.TotalPrice),
		NeedsConfiguration:    li.NeedsConfiguration,
		Configuration:         li.Configuration,
		ConfigStatus:          string(li.ConfigStatus),
		CompletedCount:        li.CompletedCount,
		TotalRequired:         li.TotalRequired,
		ConfigurationProgress: li.ConfigurationProgress,
		ConfiguredAt:          li.ConfiguredAt,
	}
}

type SignatureResponse struct {
	SignedBy      string    `json:"signed_by"`
	SignedByEmail string    `json:"signed_by_email,omitempty"`
	SignedAt      time.Time `json:"signed_at"`
}

// QuoteResponse renders a quote for display. Status is the effective status:
// a stored-pending quote past its deadline reads as expired here while the
// stored value stays pending.
type QuoteResponse struct {
	QuoteID     string             `json:"quote_id"`
	ID          string             `json:"id"`
	QuoteNumber string             `json:"quote_number"`
	Status      string             `json:"status"`
	Items       []LineItemResponse `json:"items"`
	FinalTotals MoneyResponse      `json:"final_totals"`
	CreatedAt   time.Time          `json:"created_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
	Customer    CustomerResponse   `json:"customer_info"`
	Signature   *SignatureResponse `json:"signature,omitempty"`
	Terms       TermsResponse      `json:"terms"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type TermsResponse struct {
	InitialTermMonths    int `json:"initial_term_months"`
	RenewalPeriodMonths  int `json:"renewal_period_months"`
	NonRenewalNoticeDays int `json:"non_renewal_notice_days"`
}

func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	res := QuoteResponse{
		QuoteID:     q.ID,
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Status:      string(q.EffectiveStatus(now)),
		Items:       make([]LineItemResponse, 0, len(q.Items)),
		FinalTotals: fromMoney(q.FinalTotals),
		CreatedAt:   q.CreatedAt,
		ExpiresAt:   q.ExpiresAt,
		Customer:    CustomerResponse{Name: q.Customer.Name, Email: q.Customer.Email, Company: q.Customer.Company},
		Terms: TermsResponse{
			InitialTermMonths:    q.Terms.InitialTermMonths,
			RenewalPeriodMonths:  q.Terms.RenewalPeriodMonths,
			NonRenewalNoticeDays: q.Terms.NonRenewalNoticeDays,
		},
	}
	if q.Signature != nil {
		res.Signature = &SignatureResponse{
			SignedBy:      q.Signature.SignedBy,
			SignedByEmail: q.Signature.SignedByEmail,
			SignedAt:      q.Signature.SignedAt,
		}
	}
	for _, li := range q.Items {
		res.Items = append(res.Items, FromLineItem(li))
	}
	return res
}

func FromQuotes(quotes []entities.Quote, now time.Time) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, now))
	}
	return out
}
