package entities

import "github.com/shopspring/decimal"

type Revenue struct {
	Product  decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type TodayFacet struct {
	Date      string
	Orders    int
	Customers int
	Revenue   decimal.Decimal
}

// SalesDay is one row of the rolling sales table.
type SalesDay struct {
	Date      string
	Orders    int
	Customers int
	Revenue   Revenue
}

type SalesSummary struct {
	TotalOrders     int
	Revenue         Revenue
	Today           TodayFacet
	StatusHistogram map[OrderStatusType]int
	WindowDays      int
	Daily           []SalesDay
}
