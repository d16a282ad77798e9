package wallet

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Provider est l'équivalent du provider injecté dans le navigateur
// (window.ethereum) : il expose la demande d'accès aux comptes.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
}

// Code d'erreur EIP-1193 : requête rejetée par l'utilisateur
const rpcErrUserRejected = 4001

// RPCProvider parle le même JSON-RPC que le provider injecté, via un
// endpoint HTTP (noeud local ou bridge).
type RPCProvider struct {
	rpcURL string
	client *resty.Client
}

func NewRPCProvider(rpcURL string) *RPCProvider {
	return &RPCProvider{
		rpcURL: rpcURL,
		client: resty.New(),
	}
}

func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var result struct {
		Result []string `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"method":  "eth_requestAccounts",
			"params":  []interface{}{},
		}).
		SetResult(&result).
		Post(p.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("requête provider: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("requête provider: statut %s", resp.Status())
	}

	if result.Error != nil {
		if result.Error.Code == rpcErrUserRejected {
			return nil, ErrUserRejected
		}
		return nil, fmt.Errorf("erreur provider %d: %s", result.Error.Code, result.Error.Message)
	}

	return result.Result, nil
}
