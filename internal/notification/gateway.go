package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"buildmart-be/internal/logger"

	"go.uber.org/zap"
)

// Gateway delivers one notification over a single channel.
type Gateway interface {
	SendStatusEmail(ctx context.Context, to string, n *Notification) error
}

type mailerGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewMailerGateway(apiKey, baseURL string) Gateway {
	if apiKey == "" {
		logger.L().Warn("mailer API key is empty")
	}

	return &mailerGateway{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *mailerGateway) SendStatusEmail(ctx context.Context, to string, n *Notification) error {
	log := logger.L().With(
		zap.String("notification_id", n.ID.String()),
		zap.String("event_type", string(n.EventType)),
		zap.String("status", string(n.PayloadStatus)),
	)

	body := map[string]interface{}{
		"to":       to,
		"template": "shipment-status",
		"variables": map[string]interface{}{
			"order_id":    n.OrderID,
			"shipment_id": n.ShipmentID.String(),
			"status":      string(n.PayloadStatus),
			"reason_code": n.PayloadReason,
			"event_type":  string(n.EventType),
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal mail request", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating mail request", zap.Error(err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("mailer request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error("mailer rejected request",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("mailer returned status %d", resp.StatusCode)
	}

	log.Debug("status email accepted by mailer")
	return nil
}
