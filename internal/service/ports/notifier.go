package ports

import (
	"context"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *domain.Order)
}
