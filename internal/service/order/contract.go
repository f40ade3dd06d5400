//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"ordertracker/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) error
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error
	Delete(ctx context.Context, id int64) error
}

type AttachmentStorage interface {
	Upload(ctx context.Context, attachment entities.Attachment) (string, error)
	Remove(ctx context.Context, url string) error
}

// EventPublisher is best effort: delivery problems are handled by the implementation.
type EventPublisher interface {
	OrderChanged(ctx context.Context, event entities.OrderEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
