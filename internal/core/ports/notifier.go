package ports

import (
	"context"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// RegistrationNotifier delivers a new-customer registration event to an
// external system. Best-effort: callers log and swallow any error.
type RegistrationNotifier interface {
	NotifyRegistration(ctx context.Context, event domain.RegistrationEvent) error
}
