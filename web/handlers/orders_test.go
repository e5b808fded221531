package handlers

import (
	"strings"
	"testing"

	"github.com/storemart/models"
	"github.com/stretchr/testify/assert"
)

func TestTaxRateFor(t *testing.T) {
	gst18 := models.GstSlabEighteen
	gst5 := models.GstSlabFive
	vat20 := models.VatRateTwenty

	tests := []struct {
		name    string
		tenant  *models.Tenant
		product *models.Product
		want    float64
	}{
		{
			name:    "gst tenant with 18 percent slab",
			tenant:  &models.Tenant{TaxType: models.TaxGST},
			product: &models.Product{GstSlab: &gst18},
			want:    0.18,
		},
		{
			name:    "gst tenant with 5 percent slab",
			tenant:  &models.Tenant{TaxType: models.TaxGST},
			product: &models.Product{GstSlab: &gst5},
			want:    0.05,
		},
		{
			name:    "gst tenant with unrated product",
			tenant:  &models.Tenant{TaxType: models.TaxGST},
			product: &models.Product{},
			want:    0,
		},
		{
			name:    "vat tenant with 20 percent rate",
			tenant:  &models.Tenant{TaxType: models.TaxVAT},
			product: &models.Product{VatRate: &vat20},
			want:    0.20,
		},
		{
			name:    "custom tax tenant has no automatic rate",
			tenant:  &models.Tenant{TaxType: models.TaxCustom},
			product: &models.Product{GstSlab: &gst18},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taxRateFor(tt.tenant, tt.product))
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	maxCap := 500.00

	tests := []struct {
		name     string
		coupon   *models.Coupon
		subtotal float64
		want     float64
	}{
		{
			name:     "percentage discount",
			coupon:   &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 10},
			subtotal: 2000,
			want:     200,
		},
		{
			name: "percentage discount hits cap",
			coupon: &models.Coupon{
				DiscountType:      models.DiscountPercentage,
				DiscountValue:     10,
				MaxDiscountAmount: &maxCap,
			},
			subtotal: 20000,
			want:     500,
		},
		{
			name:     "fixed amount discount",
			coupon:   &models.Coupon{DiscountType: models.DiscountFixedAmount, DiscountValue: 200},
			subtotal: 1500,
			want:     200,
		},
		{
			name:     "fixed amount never exceeds subtotal",
			coupon:   &models.Coupon{DiscountType: models.DiscountFixedAmount, DiscountValue: 200},
			subtotal: 149,
			want:     149,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, couponDiscount(tt.coupon, tt.subtotal), 0.001)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 7852.09, round2(7852.091))
	assert.Equal(t, 0.30, round2(0.1+0.2))
	assert.Equal(t, 100.13, round2(100.125))
}

func TestNewOrderNumber(t *testing.T) {
	a := newOrderNumber()
	b := newOrderNumber()

	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.Len(t, a, len("ORD-")+12)
	assert.Equal(t, strings.ToUpper(a), a)
	assert.NotEqual(t, a, b)
}
