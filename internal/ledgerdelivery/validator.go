package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/proxmarket/proxmarket/internal/proxygen"
	"github.com/proxmarket/proxmarket/pkg/symbolpkg"
)

// ValidSymbol validates whether the crypto asset symbol is supported.
var ValidSymbol validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return symbolpkg.IsSupportedSymbol(s)
	}
	return false
}

// ValidLocation validates whether the proxy location is supported.
var ValidLocation validator.Func = func(fl validator.FieldLevel) bool {
	if l, ok := fl.Field().Interface().(string); ok {
		return proxygen.IsSupportedLocation(l)
	}
	return false
}
