package fraudclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/nats-io/nats.go"
)

// Client performs synchronous fraud checks over NATS request-reply.
type Client struct {
	Conn    *nats.Conn
	Subject string
	Timeout time.Duration
}

func New(conn *nats.Conn, subject string, timeout time.Duration) *Client {
	return &Client{Conn: conn, Subject: subject, Timeout: timeout}
}

// Check sends req and waits for the responder's verdict. A missing reply is
// reported as models.ErrTimeout, never as a rejection.
func (c *Client) Check(ctx context.Context, req models.FraudCheckRequest) (models.FraudCheckResponse, error) {
	var resp models.FraudCheckResponse

	data, err := json.Marshal(req)
	if err != nil {
		return resp, fmt.Errorf("error marshaling fraud request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	msg, err := c.Conn.RequestWithContext(ctx, c.Subject, data)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, nats.ErrTimeout):
			return resp, fmt.Errorf("%w: transaction %s after %s", models.ErrTimeout, req.TransactionID, c.Timeout)
		case errors.Is(err, nats.ErrNoResponders):
			return resp, fmt.Errorf("%w: %s", models.ErrFraudUnavailable, c.Subject)
		default:
			return resp, fmt.Errorf("error requesting fraud check: %w", err)
		}
	}

	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return resp, fmt.Errorf("error parsing fraud response: %w", err)
	}
	if resp.TransactionID != req.TransactionID {
		return models.FraudCheckResponse{}, fmt.Errorf("%w: sent %s, got %s", models.ErrMismatchedReply, req.TransactionID, resp.TransactionID)
	}
	return resp, nil
}
