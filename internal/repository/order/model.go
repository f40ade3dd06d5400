package order

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID             int64
	OrderCode      pgtype.Text
	CustomerName   string
	FBProfile      pgtype.Text
	OrderDetails   string
	Status         string
	DeliveryMethod string
	OrderDate      pgtype.Date
	PaidProduct    decimal.Decimal
	PaidShipping   decimal.Decimal
	ShipmentDate   pgtype.Date
	ReleaseDate    pgtype.Date
	Notes          pgtype.Text
	AttachmentURL  pgtype.Text
	CreatedAt      time.Time
}

// OrderModifyDB mirrors entities.OrderModify: a nil pointer leaves the column
// untouched, a value with Valid == false writes NULL.
type OrderModifyDB struct {
	ID             *int64
	CustomerName   *string
	FBProfile      *pgtype.Text
	OrderDetails   *string
	Status         *string
	DeliveryMethod *string
	OrderDate      *pgtype.Date
	PaidProduct    *decimal.Decimal
	PaidShipping   *decimal.Decimal
	ShipmentDate   *pgtype.Date
	ReleaseDate    *pgtype.Date
	Notes          *pgtype.Text
	AttachmentURL  *pgtype.Text
}
