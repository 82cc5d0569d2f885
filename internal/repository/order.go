package repository

import (
	"context"
	"sync"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

// OrderRepository is an append-only, most-recent-first sequence of
// orders. No update or delete is exposed.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderRepo() *OrderRepository {
	return &OrderRepository{}
}

// Create prepends, so reads see the newest order first.
func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]domain.Order{*o}, r.orders...)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *OrderRepository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, len(r.orders))
	for i := range r.orders {
		o := r.orders[i]
		out[i] = &o
	}
	return out, nil
}
