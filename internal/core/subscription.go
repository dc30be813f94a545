package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/edvin/saasadmin/internal/model"
	"github.com/edvin/saasadmin/internal/store"
)

// SubscriptionService owns the singleton subscription record. Every
// successful plan purchase overwrites it wholesale; no history is kept.
type SubscriptionService struct {
	store store.Store
	mu    sync.Mutex
}

func NewSubscriptionService(st store.Store) *SubscriptionService {
	return &SubscriptionService{store: st}
}

// Get returns the current subscription, installing the default record on
// first read of an empty store.
func (s *SubscriptionService) Get(ctx context.Context) (model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Read(ctx, store.KeySubscription)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("load subscription: %w", err)
	}
	if !ok {
		sub := defaultSubscription()
		if err := s.write(ctx, sub); err != nil {
			return model.Subscription{}, err
		}
		return sub, nil
	}

	var sub model.Subscription
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		return model.Subscription{}, fmt.Errorf("decode subscription record: %w", err)
	}
	return sub, nil
}

// Set replaces the subscription record.
func (s *SubscriptionService) Set(ctx context.Context, sub model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, sub)
}

func (s *SubscriptionService) write(ctx context.Context, sub model.Subscription) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode subscription record: %w", err)
	}
	if err := s.store.Write(ctx, store.KeySubscription, string(data)); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}
