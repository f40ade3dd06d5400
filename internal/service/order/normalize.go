package order

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/status_workflow"
)

// formPayload is the trimmed form as seen by the validator.
type formPayload struct {
	CustomerName   string `form:"customer_name" validate:"required,max=200"`
	FBProfile      string `form:"fb_profile" validate:"max=500"`
	OrderDetails   string `form:"order_details" validate:"required,max=5000"`
	Status         string `form:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled cancel canceled"`
	DeliveryMethod string `form:"delivery_method" validate:"omitempty,oneof=jnt walkin mto"`
	OrderDate      string `form:"order_date" validate:"omitempty,datetime=2006-01-02"`
	ShipmentDate   string `form:"shipment_date" validate:"omitempty,datetime=2006-01-02"`
	ReleaseDate    string `form:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          string `form:"notes" validate:"max=5000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	return v
}

// Normalize turns a raw form into a persist-ready write. It trims every field,
// maps empty optional fields to NULL, coerces money (blank or non-numeric is 0)
// and applies the delivery method rules. Negative money is kept and reported in
// the returned warnings.
func Normalize(form entities.OrderForm) (entities.OrderModify, []string, error) {
	payload := formPayload{
		CustomerName:   strings.TrimSpace(form.CustomerName),
		FBProfile:      strings.TrimSpace(form.FBProfile),
		OrderDetails:   strings.TrimSpace(form.OrderDetails),
		Status:         strings.ToLower(strings.TrimSpace(form.Status)),
		DeliveryMethod: strings.ToLower(strings.TrimSpace(form.DeliveryMethod)),
		OrderDate:      strings.TrimSpace(form.OrderDate),
		ShipmentDate:   strings.TrimSpace(form.ShipmentDate),
		ReleaseDate:    strings.TrimSpace(form.ReleaseDate),
		Notes:          strings.TrimSpace(form.Notes),
	}

	// release_date only exists for made-to-order, so any other method drops it
	// before it can fail the date check.
	if method, ok := entities.ParseDeliveryMethod(payload.DeliveryMethod); ok && !status_workflow.ReleaseDateApplies(method) {
		payload.ReleaseDate = ""
	}

	if err := validate.Struct(payload); err != nil {
		return entities.OrderModify{}, nil, validationError(err)
	}

	status, ok := entities.ParseOrderStatus(payload.Status)
	if !ok {
		return entities.OrderModify{}, nil, fmt.Errorf("%w: %q", ErrInvalidStatus, payload.Status)
	}
	method, ok := entities.ParseDeliveryMethod(payload.DeliveryMethod)
	if !ok {
		return entities.OrderModify{}, nil, fmt.Errorf("%w: %q", ErrInvalidDeliveryMethod, payload.DeliveryMethod)
	}

	paidProduct, err := parseMoney("paid_product", form.PaidProduct)
	if err != nil {
		return entities.OrderModify{}, nil, err
	}
	paidShipping, err := parseMoney("paid_shipping", form.PaidShipping)
	if err != nil {
		return entities.OrderModify{}, nil, err
	}

	modify := entities.OrderModify{
		CustomerName:   pointer.To(payload.CustomerName),
		FBProfile:      pointer.To(payload.FBProfile),
		OrderDetails:   pointer.To(payload.OrderDetails),
		Status:         pointer.To(status),
		DeliveryMethod: pointer.To(method),
		OrderDate:      pointer.To(payload.OrderDate),
		PaidProduct:    pointer.To(paidProduct),
		PaidShipping:   pointer.To(paidShipping),
		ShipmentDate:   pointer.To(payload.ShipmentDate),
		ReleaseDate:    pointer.To(payload.ReleaseDate),
		Notes:          pointer.To(payload.Notes),
	}

	status_workflow.ApplyDeliveryRules(&modify)

	return modify, negativeAmountWarnings(&modify), nil
}

// Money columns are NUMERIC(14,2).
const moneyScale = 2

var moneyLimit = decimal.New(1, 12)

// parseMoney coerces blank or non-numeric input to zero. Amounts the money
// columns cannot hold exactly are rejected.
func parseMoney(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, nil
	}

	if !amount.Equal(amount.Truncate(moneyScale)) {
		return decimal.Zero, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, field, moneyScale)
	}
	if amount.Abs().GreaterThanOrEqual(moneyLimit) {
		return decimal.Zero, fmt.Errorf("%w: %s must be below %s", ErrInvalidAmount, field, moneyLimit)
	}
	return amount, nil
}

func negativeAmountWarnings(modify *entities.OrderModify) []string {
	var warnings []string
	if modify.PaidProduct != nil && modify.PaidProduct.IsNegative() {
		NegativeAmountsTotal.WithLabelValues("paid_product").Inc()
		warnings = append(warnings, "paid_product is negative")
	}
	if modify.PaidShipping != nil && modify.PaidShipping.IsNegative() {
		NegativeAmountsTotal.WithLabelValues("paid_shipping").Inc()
		warnings = append(warnings, "paid_shipping is negative")
	}
	return warnings
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate order form: %w", err)
	}

	var missing []string
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			missing = append(missing, fe.Field())
		case fe.Tag() == "max":
			errs = append(errs, fmt.Errorf("%w: %s", ErrFieldTooLong, fe.Field()))
		case fe.Field() == "status":
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidStatus, fe.Value()))
		case fe.Field() == "delivery_method":
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidDeliveryMethod, fe.Value()))
		case fe.Tag() == "datetime":
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDate, fe.Field()))
		default:
			errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Field(), fe.Tag()))
		}
	}

	if len(missing) > 0 {
		errs = append([]error{fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))}, errs...)
	}
	return errors.Join(errs...)
}
