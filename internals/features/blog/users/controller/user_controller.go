package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/users/dto"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

const conflictMsg = "Já existe um usuário com este username ou e-mail."

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.Preload("Posts").Preload("Comments").Find(&users).Error; err != nil {
		log.Println("[ERROR] Falha ao listar usuários:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar usuários")
	}

	return helper.Success(c, "Usuários listados com sucesso", fiber.Map{
		"total": len(users),
		"users": users,
	})
}

// GET /api/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var user model.UserModel
	if err := uc.DB.Preload("Posts").Preload("Comments").First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Usuário encontrado", user)
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	user := req.ToModel()
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
		user.Password = string(hash)
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		return helper.MapDBError(c, err, conflictMsg)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado com sucesso", user)
}

// PUT /api/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if !req.HasChanges() {
		return helper.Error(c, fiber.StatusBadRequest, "Forneça ao menos um campo para atualizar")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	req.Apply(&user)
	if err := uc.DB.Save(&user).Error; err != nil {
		return helper.MapDBError(c, err, conflictMsg)
	}

	return helper.Success(c, "Usuário atualizado com sucesso", user)
}

// DELETE /api/users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var user model.UserModel
	if err := uc.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
