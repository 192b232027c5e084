package entities

// Default ambient location context copied into new configurations.
const (
	DefaultIBX  = "MB2"
	DefaultCage = "A-101"
)

// SessionState is the full state tree owned by the store. It is persisted as
// one JSON blob under a single key and rehydrated on startup.
type SessionState struct {
	Cart         []CartItem `json:"cart"`
	Packages     []CartItem `json:"packages"`
	Quotes       []Quote    `json:"quotes"`
	Orders       []Order    `json:"orders"`
	SelectedIBX  string     `json:"selected_ibx"`
	SelectedCage string     `json:"selected_cage"`
}

// NewSessionState returns the empty tree with location defaults applied.
func NewSessionState() SessionState {
	return SessionState{
		Cart:         []CartItem{},
		Packages:     []CartItem{},
		Quotes:       []Quote{},
		Orders:       []Order{},
		SelectedIBX:  DefaultIBX,
		SelectedCage: DefaultCage,
	}
}

// Sanitize repairs a state tree loaded from storage. Malformed data is
// coerced back into shape, never discarded: nil collections become empty,
// missing statuses default to pending, and line-item progress counters are
// clamped and their derived fields recomputed.
func Sanitize(s SessionState) SessionState {
	if s.Cart == nil {
		s.Cart = []CartItem{}
	}
	if s.Packages == nil {
		s.Packages = []CartItem{}
	}
	if s.Quotes == nil {
		s.Quotes = []Quote{}
	}
	if s.Orders == nil {
		s.Orders = []Order{}
	}
	if s.SelectedIBX == "" {
		s.SelectedIBX = DefaultIBX
	}
	if s.SelectedCage == "" {
		s.SelectedCage = DefaultCage
	}

	for i := range s.Quotes {
		q := &s.Quotes[i]
		if q.Items == nil {
			q.Items = []LineItem{}
		}
		if q.Status == "" {
			q.Status = QuoteStatusPending
		}
		if q.QuoteNumber == "" {
			q.QuoteNumber = q.ID
		}
		for j := range q.Items {
			q.Items[j] = q.Items[j].NormalizeProgress()
		}
	}
	for i := range s.Orders {
		o := &s.Orders[i]
		if o.Items == nil {
			o.Items = []LineItem{}
		}
		if o.Status == "" {
			o.Status = OrderStatusPending
		}
		if o.OrderNumber == "" {
			o.OrderNumber = o.ID
		}
	}
	return s
}

// Clone deep-copies the tree so callers can hand out snapshots without
// aliasing the store-owned slices and maps.
func Clone(s SessionState) SessionState {
	out := s
	out.Cart = cloneCartItems(s.Cart)
	out.Packages = cloneCartItems(s.Packages)

	out.Quotes = make([]Quote, len(s.Quotes))
	for i, q := range s.Quotes {
		q.Items = cloneLineItems(q.Items)
		if q.Signature != nil {
			sig := *q.Signature
			q.Signature = &sig
		}
		out.Quotes[i] = q
	}

	out.Orders = make([]Order, len(s.Orders))
	for i, o := range s.Orders {
		o.Items = cloneLineItems(o.Items)
		out.Orders[i] = o
	}
	return out
}

func cloneCartItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		it.Configuration = cloneConfig(it.Configuration)
		out[i] = it
	}
	return out
}

func cloneLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, li := range items {
		li.Configuration = cloneConfig(li.Configuration)
		if li.ConfiguredAt != nil {
			ts := *li.ConfiguredAt
			li.ConfiguredAt = &ts
		}
		out[i] = li
	}
	return out
}

func cloneConfig(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
