//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sales_metrics_test
package sales_metrics

import (
	"context"

	"ordertracker/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Order, error)
}
