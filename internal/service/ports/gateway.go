package ports

import "context"

// RefundGateway initiates the actual fund movement for a refund. Hosted
// checkout and webhook verification live outside this core.
type RefundGateway interface {
	CreateRefund(ctx context.Context, gatewayRef string, amount int64) (string, error)
}
