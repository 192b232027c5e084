package store

import (
	"context"

	"colohub/internal/domain/entities"
	"colohub/internal/domain/identifier"
)

// CreateQuoteInput is the discriminated payload for CreateQuote. Exactly one
// branch is read: when Quote is set the caller supplied a fully-formed quote,
// otherwise Items is wrapped into a new one.
type CreateQuoteInput struct {
	Items []entities.LineItem
	Quote *entities.Quote
}

// CreateQuote mints and appends a quote. Missing fields on a full payload are
// defaulted (id, quote number, status, timestamps, totals, customer, terms)
// but caller-supplied values win. The cart is NOT cleared here; only the
// accept-quote flow clears it.
func (s *Store) CreateQuote(ctx context.Context, input CreateQuoteInput) entities.Quote {
	now := s.now().UTC()

	var q entities.Quote
	if input.Quote != nil {
		q = *input.Quote
	} else {
		q = entities.Quote{Items: input.Items, CreatedAt: now}
	}

	if q.ID == "" {
		q.ID = identifier.NewQuoteID()
	}
	if q.QuoteNumber == "" {
		q.QuoteNumber = q.ID
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusPending
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	if q.ExpiresAt.IsZero() {
		q.ExpiresAt = q.CreatedAt.AddDate(0, 0, entities.QuoteValidityDays)
	}
	if q.Items == nil {
		q.Items = []entities.LineItem{}
	}
	for i := range q.Items {
		q.Items[i] = q.Items[i].NormalizeProgress()
	}
	if (q.FinalTotals == entities.Money{}) {
		q.FinalTotals = entities.SumItemTotals(q.Items)
	}
	if (q.Customer == entities.CustomerInfo{}) {
		q.Customer = entities.DemoCustomer()
	}
	if (q.Terms == entities.ContractTerms{}) {
		q.Terms = entities.DefaultContractTerms()
	}

	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Quotes = append(st.Quotes, q)
		return st
	})
	return q
}

// AddQuote appends a pre-built quote verbatim, bypassing id minting. Used to
// materialize demo quotes.
func (s *Store) AddQuote(ctx context.Context, q entities.Quote) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Quotes = append(st.Quotes, q)
		return st
	})
}

// QuotePatch is the shallow top-level merge applied by UpdateQuote. Nil
// fields are left untouched; a non-nil Items replaces the array wholesale.
type QuotePatch struct {
	Items       []entities.LineItem
	QuoteNumber *string
	FinalTotals *entities.Money
	Customer    *entities.CustomerInfo
}

// UpdateQuote shallow-merges the patch into the matching quote. A missing
// quote id is a silent no-op.
func (s *Store) UpdateQuote(ctx context.Context, quoteID string, patch QuotePatch) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		for i := range st.Quotes {
			if st.Quotes[i].ID != quoteID {
				continue
			}
			if patch.Items != nil {
				st.Quotes[i].Items = patch.Items
			}
			if patch.QuoteNumber != nil {
				st.Quotes[i].QuoteNumber = *patch.QuoteNumber
			}
			if patch.FinalTotals != nil {
				st.Quotes[i].FinalTotals = *patch.FinalTotals
			}
			if patch.Customer != nil {
				st.Quotes[i].Customer = *patch.Customer
			}
			break
		}
		return st
	})
}

// UpdateQuoteStatus sets the status, optional signature and UpdatedAt stamp.
// Idempotent under repeated identical calls. A quote that has left pending is
// never reset to pending.
func (s *Store) UpdateQuoteStatus(ctx context.Context, quoteID string, status entities.QuoteStatus, sig *entities.Signature) {
	now := s.now().UTC()
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		for i := range st.Quotes {
			if st.Quotes[i].ID != quoteID {
				continue
			}
			if st.Quotes[i].Status != entities.QuoteStatusPending && status == entities.QuoteStatusPending {
				break
			}
			st.Quotes[i].Status = status
			st.Quotes[i].UpdatedAt = now
			if sig != nil {
				copied := *sig
				st.Quotes[i].Signature = &copied
			}
			break
		}
		return st
	})
}

// QuoteByID returns a copy of the matching quote.
func (s *Store) QuoteByID(id string) (entities.Quote, bool) {
	snap := s.Snapshot()
	for _, q := range snap.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Quote{}, false
}

func (s *Store) Quotes() []entities.Quote {
	return s.Snapshot().Quotes
}

// ApplyItemConfiguration is the configuration-progress transition for one
// (quote, item index) pair. It advances the completion counter by one capped
// at the required total, recomputes the derived status and percentage,
// overwrites the stored configuration data and re-stamps ConfiguredAt. The
// quote's items array is replaced wholesale with only the matching index
// mutated.
//
// Precondition checks (quote accepted, index in range) belong to the usecase
// layer; this transition still refuses out-of-range targets by returning
// ok=false with zero mutation.
func (s *Store) ApplyItemConfiguration(ctx context.Context, quoteID string, itemIndex int, configuration map[string]any) (entities.LineItem, bool) {
	now := s.now().UTC()

	var (
		updated entities.LineItem
		ok      bool
	)
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		for i := range st.Quotes {
			if st.Quotes[i].ID != quoteID {
				continue
			}
			items := st.Quotes[i].Items
			if itemIndex < 0 || itemIndex >= len(items) {
				return st
			}

			li := items[itemIndex]
			li.TotalRequired = li.RequiredConfigurations()
			if li.CompletedCount < li.TotalRequired {
				li.CompletedCount++
			}
			li.ConfigStatus = entities.StatusForCount(li.CompletedCount, li.TotalRequired)
			li.ConfigurationProgress = entities.ProgressPercent(li.CompletedCount, li.TotalRequired)
			li.Configuration = configuration
			li.ConfiguredAt = &now

			next := make([]entities.LineItem, len(items))
			copy(next, items)
			next[itemIndex] = li
			st.Quotes[i].Items = next

			updated, ok = li, true
			return st
		}
		return st
	})
	return updated, ok
}
