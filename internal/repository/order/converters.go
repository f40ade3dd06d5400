package order

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"ordertracker/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	// legacy rows may carry unknown spellings, they are kept as stored
	status, _ := entities.ParseOrderStatus(o.Status)
	method, _ := entities.ParseDeliveryMethod(o.DeliveryMethod)

	return &entities.Order{
		ID:             o.ID,
		OrderID:        textToString(o.OrderCode),
		CustomerName:   o.CustomerName,
		FBProfile:      textToString(o.FBProfile),
		OrderDetails:   o.OrderDetails,
		Status:         status,
		DeliveryMethod: method,
		OrderDate:      dateToString(o.OrderDate),
		PaidProduct:    o.PaidProduct,
		PaidShipping:   o.PaidShipping,
		ShipmentDate:   dateToString(o.ShipmentDate),
		ReleaseDate:    dateToString(o.ReleaseDate),
		Notes:          textToString(o.Notes),
		AttachmentURL:  textToString(o.AttachmentURL),
		CreatedAt:      o.CreatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) (*OrderModifyDB, error) {
	if orderModify == nil {
		return nil, nil
	}

	orderDB := &OrderModifyDB{
		ID:            orderModify.ID,
		CustomerName:  orderModify.CustomerName,
		OrderDetails:  orderModify.OrderDetails,
		PaidProduct:   orderModify.PaidProduct,
		PaidShipping:  orderModify.PaidShipping,
		FBProfile:     stringToText(orderModify.FBProfile),
		Notes:         stringToText(orderModify.Notes),
		AttachmentURL: stringToText(orderModify.AttachmentURL),
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.DeliveryMethod != nil {
		method := orderModify.DeliveryMethod.String()
		orderDB.DeliveryMethod = &method
	}

	var err error
	if orderDB.OrderDate, err = stringToDate("order_date", orderModify.OrderDate); err != nil {
		return nil, err
	}
	if orderDB.ShipmentDate, err = stringToDate("shipment_date", orderModify.ShipmentDate); err != nil {
		return nil, err
	}
	if orderDB.ReleaseDate, err = stringToDate("release_date", orderModify.ReleaseDate); err != nil {
		return nil, err
	}

	return orderDB, nil
}

func textToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func dateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(entities.DateLayout)
}

func stringToText(s *string) *pgtype.Text {
	if s == nil {
		return nil
	}
	return &pgtype.Text{String: *s, Valid: *s != ""}
}

func stringToDate(column string, s *string) (*pgtype.Date, error) {
	if s == nil {
		return nil, nil
	}
	if *s == "" {
		return &pgtype.Date{}, nil
	}

	t, err := time.Parse(entities.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", column, err)
	}
	return &pgtype.Date{Time: t, Valid: true}, nil
}
