package profile

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/toryoto/Dapps-Auth/internal/database"
	"github.com/toryoto/Dapps-Auth/internal/logs"
	"github.com/toryoto/Dapps-Auth/internal/storage"
	"github.com/toryoto/Dapps-Auth/internal/user"
)

// GetProfile GET /api/v1/users/profile?userId=
func GetProfile(c *gin.Context) {
	route := c.FullPath()

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre userId requis"})
		return
	}

	var p user.Profile
	if err := database.DB.First(&p, "user_id = ?", userID).Error; err != nil {
		// Ligne absente ou erreur store : même réponse générique
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la récupération du profil"})
		logs.LogJSON("ERROR", "Profile fetch failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": p})
}

// UpdateProfile PUT /api/v1/users/profile
// Mise à jour seule : pas d'upsert, la ligne user_profiles doit déjà exister.
func UpdateProfile(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
		Bio    string `json:"bio"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre userId requis"})
		return
	}

	result := database.DB.Model(&user.Profile{}).
		Where("user_id = ?", input.UserID).
		Updates(map[string]interface{}{"name": input.Name, "bio": input.Bio})

	if result.Error != nil || result.RowsAffected == 0 {
		details := "aucune ligne mise à jour"
		if result.Error != nil {
			details = result.Error.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du profil"})
		logs.LogJSON("ERROR", "Profile update failed", map[string]interface{}{
			"error":  details,
			"route":  route,
			"userID": input.UserID,
		})
		return
	}

	var p user.Profile
	if err := database.DB.First(&p, "user_id = ?", input.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du profil"})
		logs.LogJSON("ERROR", "Profile reload failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": input.UserID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": p})
	logs.LogJSON("INFO", "Profile updated successfully", map[string]interface{}{
		"route":  route,
		"userID": input.UserID,
	})
}

// UploadAvatar POST /api/v1/users/profile/avatar
// Route authentifiée : l'utilisateur vient du token, pas du body.
func UploadAvatar(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var p user.Profile
	if err := database.DB.First(&p, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la récupération du profil"})
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier avatar requis"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	validExtensions := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	if !validExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Extension fichier invalide"})
		return
	}

	// Supprimer l'ancienne image si existante
	if p.AvatarURL != "" {
		oldKey := filepath.Base(p.AvatarURL)
		if err := storage.DeleteFromS3(c.Request.Context(), "avatars/"+oldKey); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression ancienne image"})
			logs.LogJSON("ERROR", "Avatar deletion failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}
	}

	filename := fmt.Sprintf("user_%s%s", userID, ext)
	contentType := header.Header.Get("Content-Type")

	url, err := storage.UploadToS3(c.Request.Context(), file, filename, contentType, "avatars")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload S3"})
		logs.LogJSON("ERROR", "Avatar upload failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	if err := database.DB.Model(&user.Profile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du profil"})
		return
	}

	p.AvatarURL = url
	c.JSON(http.StatusOK, gin.H{"user": p})
	logs.LogJSON("INFO", "Avatar updated successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}
