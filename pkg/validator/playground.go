package validator

import (
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// TagPrefix is prepended to every kind to form its struct tag name.
const TagPrefix = "is_"

// TagFor returns the struct tag registered for kind, e.g. "is_chinese_tel".
func TagFor(kind Kind) string {
	return TagPrefix + string(kind)
}

// RegisterTags registers one go-playground/validator tag per kind so the
// predicates can be used declaratively:
//
//	type Signup struct {
//		Phone string `validate:"required,is_chinese_tel"`
//		ID    string `validate:"is_chinese_id_card"`
//	}
//
// Fields that are not strings always fail these tags.
func RegisterTags(v *playground.Validate) error {
	for _, e := range kindTable {
		if err := v.RegisterValidation(TagFor(e.kind), playgroundFunc(e.pred)); err != nil {
			return fmt.Errorf("register tag %s: %w", TagFor(e.kind), err)
		}
	}
	return nil
}

func playgroundFunc(pred func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return pred(field.String())
	}
}
