package store

import (
	"context"

	"colohub/internal/domain/entities"
	"colohub/internal/domain/identifier"
)

// CreateOrder mints an order id when the payload does not carry one, stamps
// CreatedAt and appends to the orders collection.
func (s *Store) CreateOrder(ctx context.Context, o entities.Order) entities.Order {
	if o.ID == "" {
		o.ID = identifier.NewOrderID()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = o.ID
	}
	if o.Status == "" {
		o.Status = entities.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now().UTC()
	}
	if o.Items == nil {
		o.Items = []entities.LineItem{}
	}
	if (o.Customer == entities.CustomerInfo{}) {
		o.Customer = entities.DemoCustomer()
	}

	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Orders = append(st.Orders, o)
		return st
	})
	return o
}

func (s *Store) OrderByID(id string) (entities.Order, bool) {
	snap := s.Snapshot()
	for _, o := range snap.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.Order{}, false
}

func (s *Store) Orders() []entities.Order {
	return s.Snapshot().Orders
}
