// Package webhook delivers registration events to an external endpoint.
// Delivery is best-effort: the caller treats any returned error as
// non-fatal.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tool2u/rental-platform/internal/api/metrics"
	"github.com/tool2u/rental-platform/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Notifier posts registration events as JSON to a configured URL.
type Notifier struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewNotifier builds a Notifier. An empty url disables dispatch: events are
// logged and dropped, which keeps local development working without an
// endpoint.
func NewNotifier(url string, timeout time.Duration, logger zerolog.Logger) *Notifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// NotifyRegistration posts the event. The response body is not consumed
// beyond the status code; any non-2xx status is reported as an error.
func (n *Notifier) NotifyRegistration(ctx context.Context, event domain.RegistrationEvent) error {
	if n.url == "" {
		n.logger.Debug().Str("customer_id", event.CustomerID).Msg("registration webhook disabled, event dropped")
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode registration event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		metrics.RegistrationWebhooksTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("deliver registration event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RegistrationWebhooksTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("deliver registration event: unexpected status %d", resp.StatusCode)
	}

	metrics.RegistrationWebhooksTotal.WithLabelValues("delivered").Inc()
	n.logger.Info().Str("customer_id", event.CustomerID).Msg("registration event delivered")
	return nil
}
