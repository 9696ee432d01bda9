package gateway

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/wb-go/wbf/logger"
)

// OmiseGateway drives refunds against the charge the borrower paid through
// the hosted checkout. Checkout itself and webhook signature verification
// live in the payment-integration layer, not here.
type OmiseGateway struct {
	client *omise.Client
	logger logger.Logger
}

func NewOmiseGateway(publicKey, secretKey string, logger logger.Logger) (*OmiseGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}
	return &OmiseGateway{client: client, logger: logger}, nil
}

// CreateRefund returns the gateway's refund id for the given charge.
func (g *OmiseGateway) CreateRefund(ctx context.Context, gatewayRef string, amount int64) (string, error) {
	if gatewayRef == "" {
		return "", fmt.Errorf("missing gateway charge reference")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	refund := &omise.Refund{}
	err := g.client.Do(refund, &operations.CreateRefund{
		ChargeID: gatewayRef,
		Amount:   amount,
	})
	if err != nil {
		return "", fmt.Errorf("omise create refund: %w", err)
	}

	g.logger.Info("gateway refund created",
		logger.String("charge_id", gatewayRef),
		logger.String("refund_id", refund.ID),
	)
	return refund.ID, nil
}
