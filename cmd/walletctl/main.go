// walletctl pilote la session côté client : connexion wallet, profil,
// déconnexion. C'est la couche de présentation qui décide quoi afficher,
// le contexte de session lui remonte des erreurs typées.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/toryoto/Dapps-Auth/internal/config"
	"github.com/toryoto/Dapps-Auth/internal/session"
	"github.com/toryoto/Dapps-Auth/internal/wallet"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	authCtx := newAuthContext(cfg)
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, authCtx, os.Args[2:])
	case "logout":
		runLogout(ctx, authCtx)
	case "whoami":
		runWhoami(authCtx)
	case "profile":
		runProfile(ctx, authCtx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func newAuthContext(cfg *config.Config) *session.AuthContext {
	var provider wallet.Provider
	if cfg.WalletRPCURL != "" {
		provider = wallet.NewRPCProvider(cfg.WalletRPCURL)
	}

	var web3auth *wallet.Web3AuthClient
	if cfg.Web3AuthClient != "" {
		web3auth = wallet.NewWeb3AuthClient(cfg.Web3AuthURL, cfg.Web3AuthClient, cfg.Web3AuthNetwork)
	}

	connector := wallet.NewConnector(provider, web3auth)
	store := session.NewFileStore(cfg.SessionFile)

	return session.NewAuthContext(cfg.APIBaseURL, connector, store)
}

func runLogin(ctx context.Context, authCtx *session.AuthContext, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	method := fs.String("method", "metamask", "metamask ou web3auth")
	_ = fs.Parse(args)

	u, err := authCtx.Login(ctx, wallet.Method(*method))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Connexion impossible :", err)
		os.Exit(1)
	}
	fmt.Printf("Connecté : %s (%s)\n", u.WalletAddress, u.AuthType)
}

func runLogout(ctx context.Context, authCtx *session.AuthContext) {
	if err := authCtx.Logout(ctx); err != nil {
		// L'état local est déjà vidé, on signale seulement l'échec distant
		fmt.Fprintln(os.Stderr, "Déconnexion distante en échec :", err)
		os.Exit(1)
	}
	fmt.Println("Déconnecté")
}

func runWhoami(authCtx *session.AuthContext) {
	if !authCtx.Authenticated() {
		fmt.Println("Non connecté")
		os.Exit(1)
	}
	u := authCtx.User()
	fmt.Printf("%s — %s (%s)\n", u.ID, u.WalletAddress, u.AuthType)
}

func runProfile(ctx context.Context, authCtx *session.AuthContext, args []string) {
	if !authCtx.Authenticated() {
		// Équivalent de la redirection de la page profil
		fmt.Fprintln(os.Stderr, "Non connecté : lancez d'abord `walletctl login`")
		os.Exit(1)
	}

	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "get":
		p, err := authCtx.Profile(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Lecture du profil impossible :", err)
			os.Exit(1)
		}
		fmt.Printf("Nom : %s\nBio : %s\n", p.Name, p.Bio)

	case "set":
		fs := flag.NewFlagSet("profile set", flag.ExitOnError)
		name := fs.String("name", "", "nom affiché")
		bio := fs.String("bio", "", "bio")
		_ = fs.Parse(args[1:])

		// Les champs omis gardent leur valeur courante
		current, err := authCtx.Profile(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Lecture du profil impossible :", err)
			os.Exit(1)
		}
		if *name == "" {
			*name = current.Name
		}
		if *bio == "" {
			*bio = current.Bio
		}

		p, err := authCtx.UpdateProfile(ctx, *name, *bio)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Mise à jour du profil impossible :", err)
			os.Exit(1)
		}
		fmt.Printf("Profil mis à jour — Nom : %s, Bio : %s\n", p.Name, p.Bio)

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage :
  walletctl login [-method metamask|web3auth]
  walletctl logout
  walletctl whoami
  walletctl profile get
  walletctl profile set [-name ...] [-bio ...]`)
}
