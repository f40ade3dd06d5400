package entities

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for every order date.
const DateLayout = "2006-01-02"

type Order struct {
	ID             int64
	OrderID        string
	CustomerName   string
	FBProfile      string
	OrderDetails   string
	Status         OrderStatusType
	DeliveryMethod DeliveryMethodType
	OrderDate      string
	PaidProduct    decimal.Decimal
	PaidShipping   decimal.Decimal
	ShipmentDate   string
	ReleaseDate    string
	Notes          string
	AttachmentURL  string
	CreatedAt      time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderStatuses lists every status in workflow order.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
}

// ParseOrderStatus maps free-form input onto the closed status set.
// Blank input is pending, legacy spellings of cancelled are folded in.
// The second result is false for anything else; the trimmed lowercase value is still returned.
func ParseOrderStatus(raw string) (OrderStatusType, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return OrderPending, true
	case "cancel", "canceled":
		return OrderCancelled, true
	}

	status := OrderStatusType(s)
	switch status {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return status, true
	default:
		return status, false
	}
}

type DeliveryMethodType string

const (
	DeliveryJNT    DeliveryMethodType = "jnt"
	DeliveryWalkIn DeliveryMethodType = "walkin"
	DeliveryMTO    DeliveryMethodType = "mto"
)

const DefaultDeliveryMethod = DeliveryJNT

func (d DeliveryMethodType) String() string {
	return string(d)
}

func DeliveryMethods() []DeliveryMethodType {
	return []DeliveryMethodType{DeliveryJNT, DeliveryWalkIn, DeliveryMTO}
}

// ParseDeliveryMethod is like ParseOrderStatus; blank input is jnt.
func ParseDeliveryMethod(raw string) (DeliveryMethodType, bool) {
	d := DeliveryMethodType(strings.ToLower(strings.TrimSpace(raw)))
	switch d {
	case "":
		return DefaultDeliveryMethod, true
	case DeliveryJNT, DeliveryWalkIn, DeliveryMTO:
		return d, true
	default:
		return d, false
	}
}

// OrderModify is a persist-ready write. A nil field is left untouched by an update;
// a pointer to "" on an optional text or date field stores NULL.
type OrderModify struct {
	ID             *int64
	CustomerName   *string
	FBProfile      *string
	OrderDetails   *string
	Status         *OrderStatusType
	DeliveryMethod *DeliveryMethodType
	OrderDate      *string
	PaidProduct    *decimal.Decimal
	PaidShipping   *decimal.Decimal
	ShipmentDate   *string
	ReleaseDate    *string
	Notes          *string
	AttachmentURL  *string
}

// OrderForm is the raw, untrusted form submission.
type OrderForm struct {
	CustomerName   string
	FBProfile      string
	OrderDetails   string
	Status         string
	DeliveryMethod string
	OrderDate      string
	PaidProduct    string
	PaidShipping   string
	ShipmentDate   string
	ReleaseDate    string
	Notes          string
	Attachment     *Attachment
}

type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FormatDMY renders a YYYY-MM-DD date as DD-MM-YYYY and returns anything else unchanged.
func FormatDMY(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02-01-2006")
}
