package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/edvin/saasadmin/internal/model"
	"github.com/edvin/saasadmin/internal/store"
)

// ErrOrderNotFound is returned when an order id references no stored order.
var ErrOrderNotFound = errors.New("order not found")

// DefaultPerPage matches the dashboard's order table page size.
const DefaultPerPage = 5

// ListOrdersParams filters and windows the order collection.
type ListOrdersParams struct {
	// Status filters by order status; empty or "ALL" selects every order.
	Status string
	// Search is a case-insensitive substring matched over id, tenant name
	// and product name.
	Search  string
	Page    int
	PerPage int
}

// OrderPage is one window of the filtered order collection.
type OrderPage struct {
	Items      []model.Order `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

// OrderService owns the order collection record. Orders are never deleted;
// the collection only grows, newest first.
type OrderService struct {
	store store.Store

	// mu serializes read-modify-write sequences on the orders record; the
	// store itself has no concurrency control and the last write wins.
	mu sync.Mutex
}

func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// List returns the requested page of orders after status filtering and
// search. Page numbers are 1-based; out-of-range pages yield an empty page,
// not an error.
func (s *OrderService) List(ctx context.Context, p ListOrdersParams) (*OrderPage, error) {
	s.mu.Lock()
	orders, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if p.Status != "" && p.Status != "ALL" && o.Status != p.Status {
			continue
		}
		if !o.Matches(p.Search) {
			continue
		}
		filtered = append(filtered, o)
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	perPage := p.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &OrderPage{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// All returns every stored order, newest first.
func (s *OrderService) All(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the order with the given id.
func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Create prepends a new order to the collection.
func (s *OrderService) Create(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return err
	}
	orders = append([]model.Order{*order}, orders...)
	return s.save(ctx, orders)
}

// MarkPaid transitions the order to PAID, stamping paidAt and the payment
// method. An order that is already PAID is left untouched: paidAt is set
// exactly once and PAID is terminal.
func (s *OrderService) MarkPaid(ctx context.Context, id, method, paidAt string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if orders[i].Status == model.OrderStatusPaid {
			o := orders[i]
			return &o, nil
		}
		orders[i].Status = model.OrderStatusPaid
		orders[i].PaidAt = paidAt
		orders[i].PaymentMethod = method
		if err := s.save(ctx, orders); err != nil {
			return nil, err
		}
		o := orders[i]
		return &o, nil
	}
	return nil, ErrOrderNotFound
}

// load reads the orders record, installing the seed collection on first read
// of an empty store. The seed is persisted before it is returned so a second
// read never re-triggers seeding.
func (s *OrderService) load(ctx context.Context) ([]model.Order, error) {
	raw, ok, err := s.store.Read(ctx, store.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		seed := seedOrders()
		if err := s.save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode orders record: %w", err)
	}
	return orders, nil
}

func (s *OrderService) save(ctx context.Context, orders []model.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders record: %w", err)
	}
	if err := s.store.Write(ctx, store.KeyOrders, string(data)); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}
