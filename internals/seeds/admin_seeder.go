package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
)

// EnsureAdminUser garante a credencial admin uma única vez, no boot.
// Se o usuário já existe nada é alterado; a senha vai para o banco
// somente como hash bcrypt.
func EnsureAdminUser(db *gorm.DB) error {
	username := "admin"

	var existing model.UserModel
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Println("[SEED] admin já existe, nada a fazer")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.UserModel{
		Username: &username,
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[SEED] admin criado ID=%d\n", admin.ID)
	return nil
}
