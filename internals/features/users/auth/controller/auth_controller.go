package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/configs"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/users/auth/dto"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
// Falha sempre responde a mesma mensagem genérica; credenciais nunca
// vão para o log.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ac.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.MapDBError(c, err, "")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := generateToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return helper.Success(c, "Login realizado com sucesso", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func generateToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
