package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemRequest struct {
	ProductHandle string `json:"product_handle" validate:"required"`
	VariantID     string `json:"variant_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
}

func TestValidateSuccess(t *testing.T) {
	req := addItemRequest{ProductHandle: "artisan-ceramic-vase", VariantID: "var1", Quantity: 2}
	assert.NoError(t, Validate(req))
}

func TestValidateMissingFields(t *testing.T) {
	err := Validate(addItemRequest{Quantity: 1})

	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["ProductHandle"])
	assert.Equal(t, "is required", fields["VariantID"])
	assert.NotContains(t, fields, "Quantity")
}

func TestValidateRangeTag(t *testing.T) {
	type req struct {
		Quantity int `validate:"gte=1"`
	}

	err := Validate(req{Quantity: -2})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be greater than or equal to 1", valErr.Fields()["Quantity"])
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate(addItemRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProductHandle")
	assert.Contains(t, err.Error(), "is required")
}

func TestDecodeAndValidate(t *testing.T) {
	body := `{"product_handle":"artisan-ceramic-vase","variant_id":"var1","quantity":2}`
	r := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(body))

	var dst addItemRequest
	require.NoError(t, DecodeAndValidate(r, &dst))
	assert.Equal(t, "artisan-ceramic-vase", dst.ProductHandle)
	assert.Equal(t, 2, dst.Quantity)
}

func TestDecodeAndValidateMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader("{not json"))

	var dst addItemRequest
	err := DecodeAndValidate(r, &dst)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
