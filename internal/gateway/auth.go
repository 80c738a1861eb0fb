package gateway

import (
	"context"
	"net/http"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// ----- request payloads -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of POST /registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// loginData is the data field of a successful login response.
type loginData struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The caller is
// responsible for persisting the token via the session controller.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", "", loginReq{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	var data loginData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", &RequestError{HTTPStatus: http.StatusOK, Message: "login response missing token"}
	}
	return data.Token, nil
}

// Register creates a new account. The backend returns no data on
// success; the caller logs in afterwards to obtain a token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/registration", "", req)
	return err
}

// GetProfile fetches the authenticated user's profile, including the
// current balance.
func (c *Client) GetProfile(ctx context.Context, token string) (*model.Profile, error) {
	env, err := c.authed(ctx, http.MethodGet, "/profile", token, nil)
	if err != nil {
		return nil, err
	}
	var p model.Profile
	if err := decodeData(env, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
