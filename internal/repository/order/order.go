package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ordertracker/internal/entities"
	"ordertracker/internal/repository"
	"ordertracker/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_code, customer_name, fb_profile, order_details, status, delivery_method,
	order_date, paid_product, paid_shipping, shipment_date, release_date, notes, attachment_url, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// List returns every order, newest order date first. Rows without a date come
// last, ties are broken by id.
func (r *Repository) List(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY order_date DESC NULLS LAST, id DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 64)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	builder := qb.Insert("orders")
	columns, values := setClauses(orderModifyModel)
	builder = builder.
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	var orderModel OrderDB
	if err := scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel); err != nil {
		if domainErr := constraintError(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Update writes every non-nil field of orderModifyEntity. ID is required.
func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) error {
	if orderModifyEntity.ID == nil {
		return fmt.Errorf("unexpected order repository update error: %w", order.ErrInvalidOrderID)
	}

	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.Update("orders")
	columns, values := setClauses(orderModifyModel)
	for i, column := range columns {
		builder = builder.Set(column, values[i])
	}
	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *orderModifyModel.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		if domainErr := constraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error {
	query := `UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, status.String(), id)
	if err != nil {
		if domainErr := constraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// constraintError maps the enum CHECK constraints and money overflow back to
// validation errors.
func constraintError(err error) error {
	if repository.IsPgErrorWithCode(err, repository.PgErrNumericOverflow) {
		return fmt.Errorf("%w: %s", order.ErrInvalidAmount, err)
	}
	if !repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
		return nil
	}

	switch constraint := repository.PgConstraintName(err); constraint {
	case "orders_status_check":
		return fmt.Errorf("%w: rejected by %s", order.ErrInvalidStatus, constraint)
	case "orders_delivery_method_check":
		return fmt.Errorf("%w: rejected by %s", order.ErrInvalidDeliveryMethod, constraint)
	default:
		return nil
	}
}

// setClauses lists the provided columns of m in a fixed order.
func setClauses(m *OrderModifyDB) ([]string, []any) {
	var (
		columns []string
		values  []any
	)
	add := func(column string, set bool, value any) {
		if set {
			columns = append(columns, column)
			values = append(values, value)
		}
	}

	add("customer_name", m.CustomerName != nil, m.CustomerName)
	add("fb_profile", m.FBProfile != nil, m.FBProfile)
	add("order_details", m.OrderDetails != nil, m.OrderDetails)
	add("status", m.Status != nil, m.Status)
	add("delivery_method", m.DeliveryMethod != nil, m.DeliveryMethod)
	add("order_date", m.OrderDate != nil, m.OrderDate)
	add("paid_product", m.PaidProduct != nil, m.PaidProduct)
	add("paid_shipping", m.PaidShipping != nil, m.PaidShipping)
	add("shipment_date", m.ShipmentDate != nil, m.ShipmentDate)
	add("release_date", m.ReleaseDate != nil, m.ReleaseDate)
	add("notes", m.Notes != nil, m.Notes)
	add("attachment_url", m.AttachmentURL != nil, m.AttachmentURL)

	return columns, values
}

func scanOrder(row pgx.Row, o *OrderDB) error {
	return row.Scan(
		&o.ID,
		&o.OrderCode,
		&o.CustomerName,
		&o.FBProfile,
		&o.OrderDetails,
		&o.Status,
		&o.DeliveryMethod,
		&o.OrderDate,
		&o.PaidProduct,
		&o.PaidShipping,
		&o.ShipmentDate,
		&o.ReleaseDate,
		&o.Notes,
		&o.AttachmentURL,
		&o.CreatedAt,
	)
}
