package validator

import (
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TagAddress validates a hex encoded 20 byte address, e.g. an NFT contract
const TagAddress = "address"

// IsValidAddress returns is an address valid or not. The 0x prefix is
// mandatory; any letter case is accepted, the checksum is not checked.
func IsValidAddress(address string) bool {
	return has0xPrefix(address) && common.IsHexAddress(address)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// New returns a validator with the project's custom tags registered.
// Field errors are named after the json or query tag when one is set.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	// RegisterValidation only fails on empty tag or nil func
	_ = v.RegisterValidation(TagAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
