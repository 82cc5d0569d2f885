package repository

import (
	"context"
	"testing"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo_StartsEmpty(t *testing.T) {
	repo := NewOrderRepo()

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepo_Create_NewestFirst(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Order{ID: "ORD-1"}))
	require.NoError(t, repo.Create(ctx, &domain.Order{ID: "ORD-2"}))
	require.NoError(t, repo.Create(ctx, &domain.Order{ID: "ORD-3"}))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-3", orders[0].ID)
	assert.Equal(t, "ORD-2", orders[1].ID)
	assert.Equal(t, "ORD-1", orders[2].ID)
}

func TestOrderRepo_GetByID(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Order{ID: "ORD-1", Title: "亲子自然探索营"}))

	order, err := repo.GetByID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "亲子自然探索营", order.Title)

	_, err = repo.GetByID(ctx, "ORD-404")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepo_GetByID_ReturnsCopy(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Order{ID: "ORD-1", Status: domain.OrderStatusPendingParticipation}))

	order, err := repo.GetByID(ctx, "ORD-1")
	require.NoError(t, err)
	order.Status = domain.OrderStatusCancelled

	again, err := repo.GetByID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPendingParticipation, again.Status)
}
