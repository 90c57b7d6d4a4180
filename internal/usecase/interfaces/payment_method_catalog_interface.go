package interfaces

import "context"

// IPaymentMethodCatalog checks payment-method references against the payment provider
// (e.g. Mercado Pago).
type IPaymentMethodCatalog interface {
	Exists(ctx context.Context, paymentMethodID string) (bool, error)
}
