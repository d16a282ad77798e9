package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	DBUrl           string
	JWTSecret       string
	Supabase        string
	SupabaseAnonKey string

	// Côté client
	APIBaseURL      string
	WalletRPCURL    string
	Web3AuthURL     string
	Web3AuthClient  string
	Web3AuthNetwork string
	SessionFile     string
}

func LoadConfig() *Config {
	return &Config{
		DBUrl:           os.Getenv("SUPABASE_DB_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Supabase:        os.Getenv("NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		APIBaseURL:      getenvDefault("API_BASE_URL", "http://localhost:8080"),
		WalletRPCURL:    os.Getenv("WALLET_RPC_URL"),
		Web3AuthURL:     os.Getenv("WEB3AUTH_URL"),
		Web3AuthClient:  os.Getenv("WEB3AUTH_CLIENT_ID"),
		Web3AuthNetwork: getenvDefault("WEB3AUTH_NETWORK", "sapphire_devnet"),
		SessionFile:     getenvDefault("SESSION_FILE", defaultSessionFile()),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "user.json"
	}
	return filepath.Join(home, ".dapps-auth", "user.json")
}
