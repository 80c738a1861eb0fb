package gateway

import (
	"context"
	"net/http"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// GetServices fetches the payable service catalog.
func (c *Client) GetServices(ctx context.Context, token string) ([]model.Service, error) {
	env, err := c.authed(ctx, http.MethodGet, "/services", token, nil)
	if err != nil {
		return nil, err
	}
	var services []model.Service
	if err := decodeData(env, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetBanners fetches the promotional banners shown on the dashboard.
func (c *Client) GetBanners(ctx context.Context, token string) ([]model.Banner, error) {
	env, err := c.authed(ctx, http.MethodGet, "/banner", token, nil)
	if err != nil {
		return nil, err
	}
	var banners []model.Banner
	if err := decodeData(env, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// balanceData is the data field of GET /balance.
type balanceData struct {
	Balance int64 `json:"balance"`
}

// GetBalance fetches the current account balance.
func (c *Client) GetBalance(ctx context.Context, token string) (int64, error) {
	env, err := c.authed(ctx, http.MethodGet, "/balance", token, nil)
	if err != nil {
		return 0, err
	}
	var data balanceData
	if err := decodeData(env, &data); err != nil {
		return 0, err
	}
	return data.Balance, nil
}
