package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"github.com/toryoto/Dapps-Auth/internal/logs"
	"github.com/toryoto/Dapps-Auth/internal/user"
)

// Login POST /api/v1/auth/login
// Upsert de l'utilisateur sur wallet_address : seul auth_type est rafraîchi
// en cas de conflit, l'id reste stable.
func Login(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		WalletAddress string `json:"wallet_address"`
		AuthType      string `json:"auth_type"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse wallet requise"})
		return
	}

	// Les premières versions du front n'envoyaient pas auth_type
	if input.AuthType == "" {
		input.AuthType = user.AuthTypeMetaMask
	}
	if !user.ValidAuthType(input.AuthType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type d'authentification invalide"})
		return
	}

	walletAddress := strings.ToLower(input.WalletAddress)

	u, err := user.UpsertByWallet(walletAddress, input.AuthType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la connexion"})
		logs.LogJSON("ERROR", "Login failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"wallet": walletAddress,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
	logs.LogJSON("INFO", "User logged in", map[string]interface{}{
		"route":    route,
		"userID":   u.ID,
		"authType": u.AuthType,
	})
}

// Logout POST /api/v1/auth/logout
// Invalide la session côté Supabase Auth. Aucun état local côté serveur.
func Logout(c *gin.Context) {
	route := c.FullPath()

	supabaseBaseURL := os.Getenv("NEXT_PUBLIC_SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	client := resty.New()
	req := client.R().SetHeader("apikey", supabaseAnonKey)

	// Le token de l'appelant est transmis tel quel à Supabase
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		req.SetHeader("Authorization", authHeader)
	}

	resp, err := req.Post(supabaseBaseURL + "/auth/v1/logout")
	if err != nil || resp.IsError() {
		details := ""
		if err != nil {
			details = err.Error()
		} else {
			details = resp.String()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la déconnexion"})
		logs.LogJSON("ERROR", "Logout failed", map[string]interface{}{
			"error": details,
			"route": route,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
	logs.LogJSON("INFO", "User logged out", map[string]interface{}{
		"route": route,
	})
}
