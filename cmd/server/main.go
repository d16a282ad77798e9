package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/toryoto/Dapps-Auth/internal/auth"
	"github.com/toryoto/Dapps-Auth/internal/database"
	"github.com/toryoto/Dapps-Auth/internal/middleware"
	"github.com/toryoto/Dapps-Auth/internal/profile"
	"github.com/toryoto/Dapps-Auth/internal/storage"
	"github.com/toryoto/Dapps-Auth/internal/user"
)

func main() {
	_ = godotenv.Load()
	dsn := os.Getenv("SUPABASE_DB_URL")
	if dsn == "" {
		panic("SUPABASE_DB_URL manquant")
	}

	database.Connect(dsn)

	if err := storage.InitS3(); err != nil {
		panic("Initialisation S3 impossible : " + err.Error())
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Session
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout)

	// Profil
	api.GET("/users/profile", profile.GetProfile)
	api.PUT("/users/profile", profile.UpdateProfile)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", user.GetMe)
	authed.POST("/users/profile/avatar", profile.UploadAvatar)

	err := r.Run(":8080")
	if err != nil {
		return
	}
}
