package orderform

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ordertracker/internal/service/order"
)

// ID reads the {id} route variable.
func ID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", order.ErrInvalidOrderID, raw)
	}
	return id, nil
}
