package order

import (
	"math"

	"fooddelivery/internal/pkg/errs"
)

const (
	// DeliveryFee is charged on every order.
	DeliveryFee int64 = 25
	// PlatformFee is charged on every order.
	PlatformFee int64 = 5
	// GSTRate is applied to the item price and rounded to the nearest unit.
	GSTRate = 0.05
)

// PriceBreakdown is the server-computed cost of an order, in whole currency units.
//
// total = itemPrice + DeliveryFee + PlatformFee + round(itemPrice * GSTRate)
//
// Example:
//
//	p, _ := order.NewPriceBreakdown(200)
//	p.GST()   // 10
//	p.Total() // 240
type PriceBreakdown struct {
	itemPrice   int64
	deliveryFee int64
	platformFee int64
	gst         int64
	total       int64
}

// NewPriceBreakdown applies the fee formula to itemPrice, which must be positive.
func NewPriceBreakdown(itemPrice int64) (PriceBreakdown, error) {
	if itemPrice <= 0 {
		return PriceBreakdown{}, errs.NewValueIsOutOfRangeError("itemPrice", itemPrice, 1, math.MaxInt32)
	}

	gst := int64(math.Round(float64(itemPrice) * GSTRate))
	return PriceBreakdown{
		itemPrice:   itemPrice,
		deliveryFee: DeliveryFee,
		platformFee: PlatformFee,
		gst:         gst,
		total:       itemPrice + DeliveryFee + PlatformFee + gst,
	}, nil
}

// RestorePriceBreakdown rebuilds a persisted breakdown as it was computed at
// creation time, even if the fee constants have changed since.
func RestorePriceBreakdown(itemPrice, deliveryFee, platformFee, gst, total int64) PriceBreakdown {
	return PriceBreakdown{
		itemPrice:   itemPrice,
		deliveryFee: deliveryFee,
		platformFee: platformFee,
		gst:         gst,
		total:       total,
	}
}

func (p PriceBreakdown) ItemPrice() int64 { return p.itemPrice }
func (p PriceBreakdown) DeliveryFee() int64 { return p.deliveryFee }
func (p PriceBreakdown) PlatformFee() int64 { return p.platformFee }
func (p PriceBreakdown) GST() int64 { return p.gst }
func (p PriceBreakdown) Total() int64 { return p.total }

// Matches reports whether a client-supplied total agrees with the computed one.
func (p PriceBreakdown) Matches(clientTotal int64) bool {
	return p.total == clientTotal
}
