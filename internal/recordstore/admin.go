package recordstore

import (
	"context"
	"net/http"

	"github.com/Amaspm/driver-management/internal/domain"
)

// CheckSync asks the store to compare its auth-account table against the
// driver table. Purely informational; nothing is repaired.
func (c *Client) CheckSync(ctx context.Context, cred Credential) (domain.SyncReport, error) {
	var out domain.SyncReport
	err := c.do(ctx, http.MethodGet, "/admin/check-sync/", cred, nil, &out)
	return out, err
}

// CleanupOrphanedUsers deletes auth accounts that have no driver record.
// Explicit manual action, never triggered automatically.
func (c *Client) CleanupOrphanedUsers(ctx context.Context, cred Credential) (domain.CleanupResult, error) {
	var out domain.CleanupResult
	err := c.do(ctx, http.MethodPost, "/admin/cleanup-users/", cred, nil, &out)
	return out, err
}
