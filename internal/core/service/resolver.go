package service

import (
	"fmt"
	"time"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// ResolveCredentials looks up a username/password pair against, in order, the
// built-in staff roster, the demo account, and the supplied registered-user
// roster snapshot. First match wins. Matching is exact and case-sensitive.
//
// The function is pure: it performs no I/O and never logs, so it can be tested
// without a storage backend. The caller is responsible for reading the roster
// snapshot from the durable store.
func ResolveCredentials(username, password string, roster []domain.RegisteredUser, now time.Time) (domain.Identity, bool) {
	if staff, ok := domain.StaffRoster[username]; ok && staff.Password == password {
		return domain.Identity{
			ID:       fmt.Sprintf("staff-%d", now.UnixMilli()),
			Username: username,
			Name:     staff.Name,
			Role:     staff.Role,
		}, true
	}

	if username == domain.DemoUsername && password == domain.DemoPassword {
		return domain.DemoIdentity(), true
	}

	// Linear scan; the roster is assumed small.
	for _, u := range roster {
		if u.Username == username && u.Password == password {
			return u.Identity(), true
		}
	}

	return domain.Identity{}, false
}
