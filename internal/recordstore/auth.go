package recordstore

import (
	"context"
	"net/http"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

// AdminLogin exchanges admin credentials for the store's opaque token. The
// token never reaches the browser; the session layer keeps it server-side.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (Credential, error) {
	var out adminLoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/admin-login/", Credential{}, adminLoginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Token: out.Token}, nil
}

// Profile is the authenticated account behind a credential.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

func (c *Client) GetProfile(ctx context.Context, cred Credential) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodGet, "/auth/user/", cred, nil, &out)
	return out, err
}
