package service

import "context"

// PaymentIntent is the gateway's handle for a client-side payment
// authorization. The client completes the charge with ClientSecret; the
// intent ID later becomes the order's transaction reference.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway abstracts the external payment processor. Amounts are in
// the processor's minor units (e.g. cents); converting from decimal prices
// is the caller's responsibility via MinorUnits.
type PaymentGateway interface {
	// CreatePaymentIntent mints a payment intent for the given amount.
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (*PaymentIntent, error)
}

// MinorUnits converts a decimal price in major currency units to the
// processor's integer minor-unit representation, rounding half away from
// zero to absorb float artifacts like 19.99*100 = 1998.9999.
func MinorUnits(amount float64) int64 {
	if amount < 0 {
		return -MinorUnits(-amount)
	}

	return int64(amount*100 + 0.5)
}
