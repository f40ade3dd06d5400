package entities

// OrderList is a filtered view over the full order set.
type OrderList struct {
	Orders      []Order
	Total       int
	DateOptions []string
	View        ViewState
}

// SaveResult is returned by create and full edit.
type SaveResult struct {
	Order    *Order
	Orders   []Order
	Warnings []string
}
