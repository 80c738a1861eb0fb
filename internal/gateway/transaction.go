package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

type topUpReq struct {
	TopUpAmount int64 `json:"top_up_amount"`
}

type transactionReq struct {
	ServiceCode string `json:"service_code"`
}

// TopUp credits the account balance. Amount bounds are validated by
// the form layer; the backend enforces them as well.
func (c *Client) TopUp(ctx context.Context, token string, amount int64) (*model.TopUpResult, error) {
	env, err := c.authed(ctx, http.MethodPost, "/topup", token, topUpReq{TopUpAmount: amount})
	if err != nil {
		return nil, err
	}
	var res model.TopUpResult
	if err := decodeData(env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateTransaction pays for one service identified by its code and
// returns the resulting invoice.
func (c *Client) CreateTransaction(ctx context.Context, token, serviceCode string) (*model.Transaction, error) {
	env, err := c.authed(ctx, http.MethodPost, "/transaction", token, transactionReq{ServiceCode: serviceCode})
	if err != nil {
		return nil, err
	}
	var tx model.Transaction
	if err := decodeData(env, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTransactionHistory fetches one page of the transaction history.
// The backend echoes the offset/limit window back in the payload.
func (c *Client) GetTransactionHistory(ctx context.Context, token string, offset, limit int) (*model.TransactionHistory, error) {
	path := "/transaction/history?offset=" + strconv.Itoa(offset) + "&limit=" + strconv.Itoa(limit)
	env, err := c.authed(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	var hist model.TransactionHistory
	if err := decodeData(env, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}
