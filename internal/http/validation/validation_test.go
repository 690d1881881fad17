package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email    string `form:"email" binding:"required,email" validate:"required,email"`
	Quantity int    `form:"quantity" binding:"gte=1,lte=10" validate:"gte=1,lte=10"`
	Code     string `form:"coupon_code" binding:"omitempty,max=5" validate:"omitempty,max=5"`
}

func TestFromBindErrorMapsFormTags(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.Struct(sampleForm{Email: "", Quantity: 0, Code: "TOOLONGCODE"})
	require.Error(t, err)

	errs := FromBindError(err, &sampleForm{})
	require.Equal(t, "This field is required.", errs["email"])
	require.Equal(t, "Must be at least 1.", errs["quantity"])
	require.Equal(t, "Must be at most 5.", errs["coupon_code"])
}

func TestFromBindErrorEmailFormat(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.Struct(sampleForm{Email: "not-an-email", Quantity: 1})
	require.Error(t, err)

	errs := FromBindError(err, &sampleForm{})
	require.Equal(t, "Enter a valid email address.", errs["email"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	t.Parallel()

	errs := FromBindError(assertionError{}, &sampleForm{})
	require.Contains(t, errs, "_")
}

type assertionError struct{}

func (assertionError) Error() string { return "bind: type mismatch" }
