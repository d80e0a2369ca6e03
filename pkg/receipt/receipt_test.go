package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/enum"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:            7,
		Date:          time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local),
		SubTotal:      18000,
		Tax:           2340,
		Discount:      1000,
		Total:         19340,
		PaymentMethod: enum.PaymentCash,
		Items: []entity.SaleItem{
			{ProductID: 1, Name: "Rice 1kg", Price: 2000, Quantity: 3},
			{ProductID: 2, Name: "Oil 1L", Price: 6000, Quantity: 2},
		},
	}
}

func sampleStore() StoreInfo {
	return StoreInfo{
		Name:     "Pasal Grocery",
		Address:  "Kathmandu, Nepal",
		Phone:    "9800000000",
		Currency: "Rs.",
	}
}

func TestRender_ContainsAllSections(t *testing.T) {
	text := Render(sampleSale(), sampleStore())

	assert.Contains(t, text, "Pasal Grocery")
	assert.Contains(t, text, "Kathmandu, Nepal")
	assert.Contains(t, text, "Tel: 9800000000")
	assert.Contains(t, text, "#7")
	assert.Contains(t, text, "2026-03-15 14:30")
	assert.Contains(t, text, "cash")
	assert.Contains(t, text, "Rice 1kg")
	assert.Contains(t, text, "3 x Rs. 20.00")
	assert.Contains(t, text, "Rs. 60.00")
	assert.Contains(t, text, "Oil 1L")
	assert.Contains(t, text, "Rs. 180.00")
	assert.Contains(t, text, "Rs. 23.40")
	assert.Contains(t, text, "-Rs. 10.00")
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "Rs. 193.40")
	assert.Contains(t, text, "Thank you for shopping!")
}

func TestRender_OmitsZeroDiscount(t *testing.T) {
	sale := sampleSale()
	sale.Discount = 0
	sale.Total = 20340

	text := Render(sale, sampleStore())

	assert.NotContains(t, text, "Discount")
}

func TestRender_LinesFitThermalRoll(t *testing.T) {
	text := Render(sampleSale(), sampleStore())

	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 32, "line %q overflows the roll", line)
	}
}

func TestShareText(t *testing.T) {
	text := ShareText(sampleSale(), "Pasal Grocery", "Rs.")

	want := "Bill from Pasal Grocery\nDate: 2026-03-15\nTotal: Rs. 193.40\nThank you for shopping!"
	require.Equal(t, want, text)
}
