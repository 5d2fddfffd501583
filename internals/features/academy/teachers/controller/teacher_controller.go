package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/dto"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/model"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

const conflictMsg = "Já existe um professor cadastrado com este CPF."

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// GET /api/teachers?q=nome
func (tc *TeacherController) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	tx := tc.DB.Order("name asc")
	if q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var teachers []model.TeacherModel
	if err := tx.Find(&teachers).Error; err != nil {
		log.Println("[ERROR] Falha ao listar professores:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar professores")
	}

	return helper.Success(c, "Professores listados com sucesso", fiber.Map{
		"total":    len(teachers),
		"teachers": teachers,
	})
}

// GET /api/teachers/:id
func (tc *TeacherController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var teacher model.TeacherModel
	if err := tc.DB.First(&teacher, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Professor encontrado", teacher)
}

// POST /api/teachers
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher := req.ToModel()
	if err := tc.DB.Create(&teacher).Error; err != nil {
		return helper.MapDBError(c, err, conflictMsg)
	}

	log.Printf("[SUCCESS] Professor criado ID=%d\n", teacher.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Professor criado com sucesso", teacher)
}

// PUT /api/teachers/:id
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if !req.HasChanges() {
		return helper.Error(c, fiber.StatusBadRequest, "Forneça ao menos um campo para atualizar")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher model.TeacherModel
	if err := tc.DB.First(&teacher, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	req.Apply(&teacher)
	if err := tc.DB.Save(&teacher).Error; err != nil {
		return helper.MapDBError(c, err, conflictMsg)
	}

	return helper.Success(c, "Professor atualizado com sucesso", teacher)
}

// DELETE /api/teachers/:id
func (tc *TeacherController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var teacher model.TeacherModel
	if err := tc.DB.First(&teacher, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := tc.DB.Delete(&teacher).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
