package entities

import (
	"slices"
	"strings"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// ViewState is the complete filter selection of a dashboard view.
// It is a value type: every change produces a new ViewState.
type ViewState struct {
	Tab    string
	Status string
	Date   string
	Query  string
}

func NewViewState(tab, status, date, query string) ViewState {
	return ViewState{
		Tab:    normalizeSelection(tab),
		Status: normalizeSelection(status),
		Date:   normalizeSelection(date),
		Query:  query,
	}
}

// Reconcile drops a date selection that is no longer among the available dates.
func (v ViewState) Reconcile(dateOptions []string) ViewState {
	if IsFilterAll(v.Date) || slices.Contains(dateOptions, v.Date) {
		return v
	}
	v.Date = FilterAll
	return v
}

func IsFilterAll(selection string) bool {
	return selection == "" || strings.EqualFold(selection, FilterAll)
}

func normalizeSelection(selection string) string {
	selection = strings.TrimSpace(selection)
	if IsFilterAll(selection) {
		return FilterAll
	}
	return selection
}
