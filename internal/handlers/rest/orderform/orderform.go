// Package orderform reads the order create/edit form from a request.
package orderform

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"ordertracker/internal/entities"
	"ordertracker/internal/service/order"
)

const (
	maxMemory       = 8 << 20
	attachmentField = "attachment"
)

// Parse accepts multipart and urlencoded bodies. The returned close func
// releases the attachment and must always be called.
func Parse(r *http.Request) (entities.OrderForm, func(), error) {
	noop := func() {}

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return entities.OrderForm{}, noop, fmt.Errorf("%w: %w", order.ErrMissingRequiredFields, err)
	}

	form := entities.OrderForm{
		CustomerName:   r.PostFormValue("customer_name"),
		FBProfile:      r.PostFormValue("fb_profile"),
		OrderDetails:   r.PostFormValue("order_details"),
		Status:         r.PostFormValue("status"),
		DeliveryMethod: r.PostFormValue("delivery_method"),
		OrderDate:      r.PostFormValue("order_date"),
		PaidProduct:    r.PostFormValue("paid_product"),
		PaidShipping:   r.PostFormValue("paid_shipping"),
		ShipmentDate:   r.PostFormValue("shipment_date"),
		ReleaseDate:    r.PostFormValue("release_date"),
		Notes:          r.PostFormValue("notes"),
	}

	if r.MultipartForm == nil {
		return form, noop, nil
	}

	file, header, err := r.FormFile(attachmentField)
	if errors.Is(err, http.ErrMissingFile) {
		return form, noop, nil
	}
	if err != nil {
		return entities.OrderForm{}, noop, fmt.Errorf("read attachment: %w", err)
	}
	if header.Size == 0 {
		file.Close()
		return form, noop, nil
	}

	form.Attachment = toAttachment(file, header)
	return form, func() { file.Close() }, nil
}

func toAttachment(file io.Reader, header *multipart.FileHeader) *entities.Attachment {
	return &entities.Attachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
}
