package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func violationFor(violations []FieldViolation, field string) *FieldViolation {
	for i := range violations {
		if violations[i].Field == field {
			return &violations[i]
		}
	}
	return nil
}

func TestValidProductInput(t *testing.T) {
	assert.Nil(t, Check(models.ProductInput{
		Name:        "ARCHIVE TOTE",
		Description: "Heavyweight waxed cotton.",
		Price:       165,
		Image:       "https://example.com/tote.jpg",
		Category:    "ACCESSORIES",
	}))
}

func TestProductInputMissingFields(t *testing.T) {
	violations := Check(models.ProductInput{Price: -1, Image: "not a url"})
	require.NotEmpty(t, violations)

	v := violationFor(violations, "name")
	require.NotNil(t, v)
	assert.Equal(t, "required", v.Rule)

	v = violationFor(violations, "price")
	require.NotNil(t, v)
	assert.Equal(t, "min", v.Rule)
	assert.Equal(t, "0", v.Param)

	v = violationFor(violations, "image")
	require.NotNil(t, v)
	assert.Equal(t, "url", v.Rule)
}

func TestProductUpdateAllowsSubset(t *testing.T) {
	price := 99.0
	assert.Nil(t, Check(models.ProductUpdate{Price: &price}))
	assert.Nil(t, Check(models.ProductUpdate{}))
}

func TestProductUpdateRejectsBadValues(t *testing.T) {
	bad := -5.0
	violations := Check(models.ProductUpdate{Price: &bad})
	require.Len(t, violations, 1)
	assert.Equal(t, "price", violations[0].Field)
}

func TestOrderInputEmail(t *testing.T) {
	violations := Check(models.OrderInput{
		CustomerName: "Ada",
		Email:        "not-an-email",
		Address:      "somewhere",
		Items:        []models.CartItem{{ProductID: "1", Quantity: 1}},
	})
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, "email", violations[0].Rule)
}

func TestLoginRequestRequiresBoth(t *testing.T) {
	violations := Check(models.LoginRequest{Username: "admin"})
	require.Len(t, violations, 1)
	assert.Equal(t, "password", violations[0].Field)
}

func TestCartAddRequest(t *testing.T) {
	assert.Nil(t, Check(models.CartAddRequest{ProductID: "1", Quantity: 2}))
	assert.NotEmpty(t, Check(models.CartAddRequest{ProductID: "1"}))
	assert.NotEmpty(t, Check(models.CartAddRequest{Quantity: 1}))
}
