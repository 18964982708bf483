// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
)

var (
	// ErrEmptyCart is returned when order creation is attempted with no
	// cart items. Raised before any side effect.
	ErrEmptyCart = errors.New("cannot create order from empty cart")

	// ErrUnknownPaymentMethod is returned for a payment method outside the
	// supported set.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// ErrInvalidPaymentDetails is returned when a payment method is missing
	// its required detail (provider for ewallet, bank for transfer).
	ErrInvalidPaymentDetails = errors.New("invalid payment details")

	// ErrOrderNotFound is returned when no order exists under an id in the
	// user's history.
	ErrOrderNotFound = errors.New("order not found")
)

// Status represents the order status. Orders created by this service are
// terminal on creation; no transition logic exists.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// PaymentMethod is the payment method tag recorded on an order. All methods
// are presentation-only placeholders; no gateway is involved.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentEwallet  PaymentMethod = "ewallet"
	PaymentTransfer PaymentMethod = "transfer"
)

// PaymentDetails carries the method-specific fields: the e-wallet provider
// for "ewallet" and the bank name for "transfer". Cash and QRIS carry none.
type PaymentDetails struct {
	Provider string `json:"provider,omitempty"`
	Bank     string `json:"bank,omitempty"`
}

// validatePayment checks the method tag and its required details.
func validatePayment(method PaymentMethod, details *PaymentDetails) error {
	switch method {
	case PaymentCash, PaymentQRIS:
		return nil
	case PaymentEwallet:
		if details == nil || details.Provider == "" {
			return fmt.Errorf("payment method %s requires a provider: %w", method, ErrInvalidPaymentDetails)
		}
		return nil
	case PaymentTransfer:
		if details == nil || details.Bank == "" {
			return fmt.Errorf("payment method %s requires a bank: %w", method, ErrInvalidPaymentDetails)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", method, ErrUnknownPaymentMethod)
	}
}

// Item is an order line holding a deep-copied product snapshot. Later
// catalog or cart changes never alter it.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Order is the immutable record of a completed purchase, derived once from
// a cart snapshot.
type Order struct {
	ID             string          `json:"id"`
	Items          []Item          `json:"items"`
	Subtotal       int64           `json:"subtotal"`
	Tax            int64           `json:"tax"`
	Total          int64           `json:"total"`
	Status         Status          `json:"status"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	PaymentDetails *PaymentDetails `json:"payment_details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Calories sums calories x quantity over the order's item snapshot
func (o *Order) Calories() int {
	total := 0
	for _, item := range o.Items {
		total += item.Product.Nutrition.Calories * item.Quantity
	}
	return total
}
