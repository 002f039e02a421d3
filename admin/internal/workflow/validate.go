package workflow

import (
	"strings"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/pkg/validate"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	msgRequired      = "Vui lòng điền đầy đủ thông tin bắt buộc"
	msgPrice         = "Giá sách phải là số dương"
	msgQuantity      = "Số lượng phải là số nguyên không âm"
	msgPhone         = "Số điện thoại không hợp lệ"
	msgNoItems       = "Vui lòng thêm ít nhất một sản phẩm"
	msgLineQuantity  = "Số lượng phải lớn hơn 0"
	msgUnknownBook   = "Sách không tồn tại"
	msgStatus        = "Trạng thái không hợp lệ"
	msgStockTemplate = "Chỉ còn %d cuốn sách này"
)

var formValidator = validate.NewCustomValidator()

// checkForm runs the struct tags and reports failures as a ValidationError
// keyed by field path.
func checkForm(form any) error {
	err := formValidator.Validate(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &errs.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return ve
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Tag() == validate.PhoneTag:
		return msgPhone
	case fe.Field() == "Items":
		return msgNoItems
	case fe.Tag() == "min":
		return msgLineQuantity
	}
	return msgRequired
}
