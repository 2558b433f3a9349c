package recordstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Amaspm/driver-management/internal/domain"
	"github.com/Amaspm/driver-management/internal/lifecycle"
)

// ListDrivers retrieves the full driver collection. The store exposes no
// pagination; the admin panel always renders the whole list.
func (c *Client) ListDrivers(ctx context.Context, cred Credential) ([]domain.Driver, error) {
	var out []domain.Driver
	if err := c.do(ctx, http.MethodGet, "/drivers/", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDriver(ctx context.Context, cred Credential, id int64) (domain.Driver, error) {
	var out domain.Driver
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/drivers/%d/", id), cred, nil, &out)
	return out, err
}

// ApplyTransition submits a validated status change as a partial update.
// The PATCH is idempotent upstream: re-submitting the same transition leaves
// the driver in the same terminal state. Serialized per driver id.
func (c *Client) ApplyTransition(ctx context.Context, cred Credential, t lifecycle.Transition) (domain.Driver, error) {
	c.locks.lock(t.DriverID)
	defer c.locks.unlock(t.DriverID)

	var out domain.Driver
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/drivers/%d/", t.DriverID), cred, t, &out)
	return out, err
}

// UpdateDriver submits a partial update of arbitrary driver fields
// (the generic edit form). fields must marshal to the store's field names.
func (c *Client) UpdateDriver(ctx context.Context, cred Credential, id int64, fields map[string]any) (domain.Driver, error) {
	c.locks.lock(id)
	defer c.locks.unlock(id)

	var out domain.Driver
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/drivers/%d/", id), cred, fields, &out)
	return out, err
}

// DeleteDriver removes a driver record permanently, together with its auth
// account upstream. Returns ErrNotFound for unknown ids and ConflictError
// when a referential constraint blocks the delete.
func (c *Client) DeleteDriver(ctx context.Context, cred Credential, id int64) error {
	c.locks.lock(id)
	defer c.locks.unlock(id)

	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/drivers/%d/", id), cred, nil, nil)
}

// CreateDriverAccount provisions the auth account plus an empty driver
// record; the driver fills in the rest during registration. The store
// defaults status to training when empty.
type CreateDriverAccount struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Status   domain.Status `json:"status,omitempty"`
}

func (c *Client) CreateDriver(ctx context.Context, cred Credential, req CreateDriverAccount) (domain.Driver, error) {
	var out domain.Driver
	err := c.do(ctx, http.MethodPost, "/auth/create-driver/", cred, req, &out)
	return out, err
}

type bulkRequest struct {
	DriverIDs []int64 `json:"driver_ids"`
}

// BulkResult is the store's summary for a bulk status action.
type BulkResult struct {
	Message string `json:"message"`
}

func (c *Client) BulkActivate(ctx context.Context, cred Credential, ids []int64) (BulkResult, error) {
	var out BulkResult
	err := c.do(ctx, http.MethodPost, "/drivers/bulk_activate/", cred, bulkRequest{DriverIDs: ids}, &out)
	return out, err
}

func (c *Client) BulkSuspend(ctx context.Context, cred Credential, ids []int64) (BulkResult, error) {
	var out BulkResult
	err := c.do(ctx, http.MethodPost, "/drivers/bulk_suspend/", cred, bulkRequest{DriverIDs: ids}, &out)
	return out, err
}

// BulkAccept activates only drivers still in pending; others are skipped
// upstream.
func (c *Client) BulkAccept(ctx context.Context, cred Credential, ids []int64) (BulkResult, error) {
	var out BulkResult
	err := c.do(ctx, http.MethodPost, "/drivers/bulk_accept/", cred, bulkRequest{DriverIDs: ids}, &out)
	return out, err
}
