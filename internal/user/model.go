package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Types d'authentification supportés
const (
	AuthTypeMetaMask = "MetaMask"
	AuthTypeWeb3Auth = "Web3Auth"
)

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	WalletAddress string    `gorm:"uniqueIndex" json:"wallet_address"`
	AuthType      string    `json:"auth_type"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigne un UUID lors de la première insertion
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	UserID    string `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

func (Profile) TableName() string {
	return "user_profiles"
}

func ValidAuthType(authType string) bool {
	return authType == AuthTypeMetaMask || authType == AuthTypeWeb3Auth
}
