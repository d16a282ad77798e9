package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toryoto/Dapps-Auth/internal/database"
)

// GetMe GET /api/v1/me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
