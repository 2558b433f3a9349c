package recordstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Amaspm/driver-management/internal/domain"
)

// Armada CRUD is a plain passthrough; the store validates everything.

func (c *Client) ListArmada(ctx context.Context, cred Credential) ([]domain.Armada, error) {
	var out []domain.Armada
	if err := c.do(ctx, http.MethodGet, "/armada/", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArmada(ctx context.Context, cred Credential, id int64) (domain.Armada, error) {
	var out domain.Armada
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/armada/%d/", id), cred, nil, &out)
	return out, err
}

func (c *Client) CreateArmada(ctx context.Context, cred Credential, a domain.Armada) (domain.Armada, error) {
	var out domain.Armada
	err := c.do(ctx, http.MethodPost, "/armada/", cred, a, &out)
	return out, err
}

func (c *Client) UpdateArmada(ctx context.Context, cred Credential, id int64, a domain.Armada) (domain.Armada, error) {
	var out domain.Armada
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/armada/%d/", id), cred, a, &out)
	return out, err
}

func (c *Client) DeleteArmada(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/armada/%d/", id), cred, nil, nil)
}
