package wallet

import (
	"context"
	"fmt"
	"strings"
)

type Method string

const (
	MethodMetaMask Method = "metamask"
	MethodWeb3Auth Method = "web3auth"
)

// AuthType renvoie la valeur auth_type attendue par l'API de session
func (m Method) AuthType() string {
	if m == MethodWeb3Auth {
		return "Web3Auth"
	}
	return "MetaMask"
}

// Connector obtient une adresse wallet via le provider injecté (MetaMask)
// ou via le client custodial (Web3Auth). Aucun effet de bord au-delà de
// l'état de connexion du provider lui-même.
type Connector struct {
	provider Provider
	web3auth *Web3AuthClient
}

func NewConnector(provider Provider, web3auth *Web3AuthClient) *Connector {
	return &Connector{provider: provider, web3auth: web3auth}
}

func (c *Connector) Connect(ctx context.Context, method Method) (string, error) {
	switch method {
	case MethodMetaMask:
		if c.provider == nil {
			return "", ErrProviderUnavailable
		}
		accounts, err := c.provider.RequestAccounts(ctx)
		if err != nil {
			return "", err
		}
		if len(accounts) == 0 {
			return "", ErrUserRejected
		}
		return strings.ToLower(accounts[0]), nil

	case MethodWeb3Auth:
		if c.web3auth == nil {
			return "", ErrProviderUnavailable
		}
		return c.web3auth.Connect(ctx)

	default:
		return "", fmt.Errorf("méthode de connexion inconnue : %s", method)
	}
}

func (c *Connector) Web3Auth() *Web3AuthClient {
	return c.web3auth
}
