package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Web3AuthClient est le client custodial (login social/email). Il est
// construit une fois avec sa configuration (réseau, client id) puis injecté
// là où on en a besoin — jamais de singleton au niveau package.
type Web3AuthClient struct {
	baseURL   string
	clientID  string
	network   string
	client    *resty.Client
	connected bool
}

func NewWeb3AuthClient(baseURL, clientID, network string) *Web3AuthClient {
	return &Web3AuthClient{
		baseURL:  baseURL,
		clientID: clientID,
		network:  network,
		client:   resty.New(),
	}
}

// Connect ouvre le flux de connexion hébergé et dérive l'adresse de la clé
// publique renvoyée par le key-provider.
func (w *Web3AuthClient) Connect(ctx context.Context) (string, error) {
	var result struct {
		Status    string `json:"status"`
		PublicKey string `json:"public_key"`
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"client_id": w.clientID,
			"network":   w.network,
		}).
		SetResult(&result).
		Post(w.baseURL + "/connect")
	if err != nil {
		return "", fmt.Errorf("connexion web3auth: %w", err)
	}

	// Fenêtre fermée par l'utilisateur
	if resp.StatusCode() == http.StatusUnauthorized || result.Status == "cancelled" {
		return "", ErrAuthCancelled
	}
	if resp.IsError() {
		return "", fmt.Errorf("connexion web3auth: statut %s", resp.Status())
	}

	pubKey, err := hex.DecodeString(result.PublicKey)
	if err != nil {
		return "", fmt.Errorf("clé publique invalide: %w", err)
	}

	address, err := DeriveAddress(pubKey)
	if err != nil {
		return "", err
	}

	w.connected = true
	return address, nil
}

func (w *Web3AuthClient) Connected() bool {
	return w != nil && w.connected
}

func (w *Web3AuthClient) Logout(ctx context.Context) error {
	if !w.connected {
		return nil
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"client_id": w.clientID}).
		Post(w.baseURL + "/logout")

	// L'état local est libéré quoi qu'il arrive
	w.connected = false

	if err != nil {
		return fmt.Errorf("déconnexion web3auth: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("déconnexion web3auth: statut %s", resp.Status())
	}
	return nil
}
