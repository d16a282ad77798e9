package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/toryoto/Dapps-Auth/internal/user"
)

var ErrNotAuthenticated = errors.New("session: non authentifié")

// Profile récupère le profil de l'utilisateur courant
func (a *AuthContext) Profile(ctx context.Context) (*user.Profile, error) {
	if !a.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	var result struct {
		User user.Profile `json:"user"`
	}

	resp, err := a.api.R().
		SetContext(ctx).
		SetQueryParam("userId", a.user.ID).
		SetResult(&result).
		Get("/api/v1/users/profile")
	if err != nil {
		return nil, fmt.Errorf("profil: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("profil: statut %s", resp.Status())
	}

	return &result.User, nil
}

// UpdateProfile enregistre name/bio et renvoie la ligne mise à jour
func (a *AuthContext) UpdateProfile(ctx context.Context, name, bio string) (*user.Profile, error) {
	if !a.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	var result struct {
		User user.Profile `json:"user"`
	}

	resp, err := a.api.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"userId": a.user.ID,
			"name":   name,
			"bio":    bio,
		}).
		SetResult(&result).
		Put("/api/v1/users/profile")
	if err != nil {
		return nil, fmt.Errorf("mise à jour profil: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mise à jour profil: statut %s", resp.Status())
	}

	return &result.User, nil
}
