// Package session porte le cycle de vie de la session côté client :
// Unauthenticated → (wallet + login API) → Authenticated(user) → logout.
// Une instance par processus, pas de partage entre goroutines.
package session

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/toryoto/Dapps-Auth/internal/logs"
	"github.com/toryoto/Dapps-Auth/internal/user"
	"github.com/toryoto/Dapps-Auth/internal/wallet"
)

type AuthContext struct {
	api       *resty.Client
	connector *wallet.Connector
	store     Store
	user      *user.User
}

// NewAuthContext restaure une éventuelle session persistée, sans aucun
// appel réseau : l'utilisateur stocké est accepté tel quel.
func NewAuthContext(apiBaseURL string, connector *wallet.Connector, store Store) *AuthContext {
	a := &AuthContext{
		api:       resty.New().SetBaseURL(apiBaseURL),
		connector: connector,
		store:     store,
	}

	stored, err := store.Load()
	if err != nil {
		logs.LogJSON("WARN", "Session restore failed", map[string]interface{}{
			"error": err.Error(),
		})
		return a
	}
	if stored != nil {
		a.user = stored
	}
	return a
}

func (a *AuthContext) User() *user.User {
	return a.user
}

func (a *AuthContext) Authenticated() bool {
	return a.user != nil
}

// Login obtient une adresse via le connecteur puis appelle l'API de session.
// En cas d'échec à l'une des deux étapes, l'état reste Unauthenticated et
// l'erreur est renvoyée à l'appelant.
func (a *AuthContext) Login(ctx context.Context, method wallet.Method) (*user.User, error) {
	if a.connector == nil {
		return nil, wallet.ErrProviderUnavailable
	}

	address, err := a.connector.Connect(ctx, method)
	if err != nil {
		logs.LogJSON("WARN", "Wallet connect failed", map[string]interface{}{
			"error":  err.Error(),
			"method": string(method),
		})
		return nil, err
	}

	var result struct {
		User user.User `json:"user"`
	}
	var apiErr struct {
		Error string `json:"error"`
	}

	resp, err := a.api.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"wallet_address": address,
			"auth_type":      method.AuthType(),
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/v1/auth/login")
	if err != nil {
		logs.LogJSON("ERROR", "Login request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("connexion: %w", err)
	}
	if resp.IsError() {
		logs.LogJSON("ERROR", "Login rejected", map[string]interface{}{
			"status": resp.Status(),
			"error":  apiErr.Error,
		})
		return nil, fmt.Errorf("connexion: statut %s", resp.Status())
	}

	u := result.User
	a.user = &u

	if err := a.store.Save(&u); err != nil {
		// La session reste valide en mémoire
		logs.LogJSON("WARN", "Session persist failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &u, nil
}

// Logout invalide la session côté store puis vide l'état local, que
// l'invalidation ait réussi ou non : une session locale périmée est pire
// qu'une tentative de déconnexion redondante.
func (a *AuthContext) Logout(ctx context.Context) error {
	var invalidateErr error

	resp, err := a.api.R().SetContext(ctx).Post("/api/v1/auth/logout")
	if err != nil {
		invalidateErr = fmt.Errorf("déconnexion: %w", err)
	} else if resp.IsError() {
		invalidateErr = fmt.Errorf("déconnexion: statut %s", resp.Status())
	}

	if a.connector != nil {
		if w := a.connector.Web3Auth(); w.Connected() {
			if err := w.Logout(ctx); err != nil {
				logs.LogJSON("WARN", "Web3Auth logout failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	a.user = nil
	if err := a.store.Clear(); err != nil {
		logs.LogJSON("WARN", "Session clear failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if invalidateErr != nil {
		logs.LogJSON("ERROR", "Logout failed", map[string]interface{}{
			"error": invalidateErr.Error(),
		})
	}
	return invalidateErr
}
