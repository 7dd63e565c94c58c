// Package payments wraps the Stripe SDK behind the one call the checkout
// path needs, plus the development fallback used when no secret key is
// configured.
package payments

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type Intent struct {
	ID           string
	ClientSecret string
}

type Client struct{}

func NewClient(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

// CreateIntent requests a payment intent for the order total. The amount is
// converted to cents; the order id rides along as correlation metadata.
func (c *Client) CreateIntent(ctx context.Context, amount decimal.Decimal, orderID int, receiptEmail string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("orderId", strconv.Itoa(orderID))
	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// DemoIntent fabricates a placeholder intent for the no-credential path.
// The dev_ prefixes make the fake unmistakable in logs and stored orders.
func DemoIntent() *Intent {
	return &Intent{
		ID:           "dev_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		ClientSecret: "dev_pi_" + uuid.NewString(),
	}
}
