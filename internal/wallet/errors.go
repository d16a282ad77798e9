package wallet

import "errors"

var (
	// ErrProviderUnavailable : aucun provider injecté/configuré pour cette méthode
	ErrProviderUnavailable = errors.New("wallet: provider indisponible")
	// ErrUserRejected : l'utilisateur a refusé la demande de comptes
	ErrUserRejected = errors.New("wallet: demande refusée par l'utilisateur")
	// ErrAuthCancelled : la fenêtre de connexion custodiale a été fermée
	ErrAuthCancelled = errors.New("wallet: connexion annulée")
)
