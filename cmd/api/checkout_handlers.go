package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/oldstupa/storefront/internal/catalog"
	"github.com/oldstupa/storefront/internal/order"
	"github.com/oldstupa/storefront/internal/payments"
)

var (
	errEmptyCart     = errors.New("cart is empty")
	errTotalMismatch = errors.New("order total does not match current product prices")
)

// intentCreator is what the checkout handler needs from the payment
// provider; nil means no credential is configured and the development
// path applies.
type intentCreator interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, orderID int, receiptEmail string) (*payments.Intent, error)
}

// orderPublisher is the optional downstream hook for confirmed orders.
type orderPublisher interface {
	PublishOrder(ctx context.Context, o order.Order, items []order.Item) error
}

// stageOrder validates the submitted cart against the live catalog and
// builds the order plus its denormalized items. The total is recomputed
// from stored product prices; the client-submitted amount is only checked,
// never trusted.
func stageOrder(ctx context.Context, products catalog.Repository, req order.CheckoutRequest, status string) (*order.Order, []order.Item, error) {
	if len(req.Items) == 0 {
		return nil, nil, errEmptyCart
	}

	total := decimal.Zero
	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, nil, fmt.Errorf("invalid quantity for product %d", line.ID)
		}
		p, err := products.GetProductByID(ctx, line.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("unknown product in cart: %d", line.ID)
		}
		unit := p.UnitPrice()
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, order.Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     unit,
			Quantity:  line.Quantity,
		})
	}
	if !total.Equal(req.Amount) {
		return nil, nil, errTotalMismatch
	}

	cust := req.Customer
	name := cust.Name
	if name == "" {
		name = "Guest"
	}
	email := cust.Email
	if email == "" {
		email = "guest@example.com"
	}
	o := &order.Order{
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   cust.Phone,
		Status:          status,
		Total:           total,
		ShippingAddress: cust,
	}
	return o, items, nil
}

// @Summary Create an order and a payment intent for it
// @Accept json
// @Produce json
// @Param checkout body order.CheckoutRequest true "cart snapshot and shipping form"
// @Success 200 {object} order.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /create-payment-intent [post]
func createPaymentIntentHandler(orders order.Repository, products catalog.Repository, intents intentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		ctx := c.Request.Context()

		o, items, err := stageOrder(ctx, products, req, order.StatusPending)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := orders.Create(ctx, o, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if intents == nil {
			log.Printf("[payments] no provider configured, issuing development intent for order %d", o.ID)
			in := payments.DemoIntent()
			if _, err := orders.SetPaymentIntent(ctx, o.ID, in.ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusOK, order.PaymentIntentResponse{
				ClientSecret:  in.ClientSecret,
				IsDevelopment: true,
			})
			return
		}

		in, err := intents.CreateIntent(ctx, o.Total, o.ID, o.CustomerEmail)
		if err != nil {
			log.Printf("[payments] intent creation failed for order %d: %v", o.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing payment: " + err.Error()})
			return
		}
		if _, err := orders.SetPaymentIntent(ctx, o.ID, in.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order.PaymentIntentResponse{ClientSecret: in.ClientSecret})
	}
}

// @Summary Place a demo order without payment processing
// @Accept json
// @Produce json
// @Param checkout body order.CheckoutRequest true "cart snapshot and shipping form"
// @Success 201 {object} order.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /create-order [post]
func createOrderHandler(orders order.Repository, products catalog.Repository, pub orderPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		ctx := c.Request.Context()

		o, items, err := stageOrder(ctx, products, req, order.StatusConfirmed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := orders.Create(ctx, o, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if pub != nil {
			// the order is already committed; a broker hiccup must not
			// fail the checkout
			if err := pub.PublishOrder(ctx, *o, items); err != nil {
				log.Printf("[events] publish order %d: %v", o.ID, err)
			}
		}

		c.JSON(http.StatusCreated, order.CreateOrderResponse{
			Success: true,
			OrderID: o.ID,
			Message: "Order placed successfully",
		})
	}
}
