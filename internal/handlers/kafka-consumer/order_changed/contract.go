//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_changed_test
package order_changed

import (
	"context"

	"ordertracker/internal/entities"
	"ordertracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Refresh(ctx context.Context) (*entities.SalesSummary, error)
}
