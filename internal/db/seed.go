package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/models"
)

// SeedUsers garante a existência do administrador e de um usuário comum
// de demonstração. Não sobrescreve contas já cadastradas.
func SeedUsers(db *gorm.DB, log *logger.Logger) error {
	seeds := []struct {
		name     string
		email    string
		password string
		roles    models.RoleList
	}{
		{
			name:     "Administrador",
			email:    "admin@avaliaccess.com",
			password: "admin123",
			roles:    models.RoleList{models.RoleAdmin, models.RoleUser},
		},
		{
			name:     "Usuário Comum",
			email:    "usuario@avaliaccess.com",
			password: "usuario123",
			roles:    models.RoleList{models.RoleUser},
		},
	}

	for _, s := range seeds {
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ?", s.email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hashed),
			Roles:        s.roles,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		log.Info("seed user created", "user_id", user.ID)
	}

	return nil
}
