package user

import (
	"gorm.io/gorm/clause"

	"github.com/toryoto/Dapps-Auth/internal/database"
)

// UpsertByWallet insère un utilisateur pour cette adresse ou, en cas de
// conflit sur wallet_address, ne rafraîchit que auth_type. L'id reste stable.
func UpsertByWallet(walletAddress, authType string) (User, error) {
	newUser := User{
		WalletAddress: walletAddress,
		AuthType:      authType,
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"auth_type": authType}),
	}).Create(&newUser).Error; err != nil {
		return User{}, err
	}

	// Relit la ligne : en cas de conflit l'id existant est conservé
	var stored User
	if err := database.DB.First(&stored, "wallet_address = ?", walletAddress).Error; err != nil {
		return User{}, err
	}
	return stored, nil
}

func FindByID(id string) (User, error) {
	var u User
	err := database.DB.First(&u, "id = ?", id).Error
	return u, err
}

func ExistsByWallet(walletAddress string) bool {
	var count int64
	database.DB.Model(&User{}).Where("wallet_address = ?", walletAddress).Count(&count)
	return count > 0
}
