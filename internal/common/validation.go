package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNameOnce sync.Once

// UseJSONFieldNames makes validation errors report json/form names
// ("zh_name") instead of Go field names ("ZhName").
func UseJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// BindingError converts a gin binding failure into a 400 naming the
// offending fields.
func BindingError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeField(fe))
		}
		return &AppError{Status: 400, Message: strings.Join(msgs, "; "), Err: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &AppError{Status: 400, Message: fmt.Sprintf("%s 欄位格式錯誤", typeErr.Field), Err: err}
	}

	return &AppError{Status: 400, Message: "請求格式錯誤", Err: err}
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 不能為空", field)
	case "email":
		return fmt.Sprintf("%s 必須是有效的電子郵件", field)
	case "url":
		return fmt.Sprintf("%s 必須是有效的網址", field)
	case "min":
		return fmt.Sprintf("%s 長度至少為 %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s 長度不能超過 %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s 必須是以下其中之一: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s 驗證失敗 (%s)", field, fe.Tag())
	}
}
