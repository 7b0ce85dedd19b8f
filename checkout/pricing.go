package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/intronerd12/Nourishy-sub000/models"
)

// Tax is 5% of the items price; shipping is free above the threshold.
var (
	taxRate           = decimal.NewFromFloat(0.05)
	shippingFlat      = decimal.NewFromInt(25)
	freeShippingAbove = decimal.NewFromInt(200)
)

// Totals is the priced breakdown of a cart, computed with decimal arithmetic
// and rounded to cents once at the end.
type Totals struct {
	ItemsPrice    float64 `json:"items_price"`
	TaxPrice      float64 `json:"tax_price"`
	ShippingPrice float64 `json:"shipping_price"`
	TotalPrice    float64 `json:"total_price"`
}

func PriceCart(items []models.CartItem) Totals {
	itemsPrice := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.ProductPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemsPrice = itemsPrice.Add(line)
	}

	tax := itemsPrice.Mul(taxRate)

	shipping := shippingFlat
	if itemsPrice.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}
	if itemsPrice.IsZero() {
		shipping = decimal.Zero
	}

	total := itemsPrice.Add(tax).Add(shipping)

	return Totals{
		ItemsPrice:    itemsPrice.Round(2).InexactFloat64(),
		TaxPrice:      tax.Round(2).InexactFloat64(),
		ShippingPrice: shipping.Round(2).InexactFloat64(),
		TotalPrice:    total.Round(2).InexactFloat64(),
	}
}
