package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/dto"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/service"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/students?q=nome
func (sc *StudentController) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	tx := sc.DB.Order("name asc")
	if q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var students []model.StudentModel
	if err := tx.Find(&students).Error; err != nil {
		log.Println("[ERROR] Falha ao listar alunos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar alunos")
	}

	return helper.Success(c, "Alunos listados com sucesso", fiber.Map{
		"total":    len(students),
		"students": students,
	})
}

// GET /api/students/:id
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Aluno encontrado", student)
}

// POST /api/students
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	// matrícula começa agora; vencimento derivado do plano
	startDate := time.Now()
	student := model.StudentModel{
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		Email:     req.Email,
		Plan:      req.Plan,
		StartDate: startDate,
		EndDate:   service.PlanEndDate(req.Plan, startDate),
		Photo:     req.Photo,
	}

	if err := sc.DB.Create(&student).Error; err != nil {
		return helper.MapDBError(c, err, "Já existe um aluno cadastrado com este CPF.")
	}

	log.Printf("[SUCCESS] Aluno criado ID=%d\n", student.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aluno criado com sucesso", student)
}

// PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if !req.HasChanges() {
		return helper.Error(c, fiber.StatusBadRequest, "Forneça ao menos um campo para atualizar")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	req.Apply(&student)

	// mudança de plano recalcula o vencimento ancorado na data de matrícula
	// original, nunca na data da edição
	if req.Plan != nil {
		student.EndDate = service.PlanEndDate(*req.Plan, student.StartDate)
	}

	if err := sc.DB.Save(&student).Error; err != nil {
		return helper.MapDBError(c, err, "Já existe um aluno cadastrado com este CPF.")
	}

	return helper.Success(c, "Aluno atualizado com sucesso", student)
}

// DELETE /api/students/:id
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := sc.DB.Delete(&student).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
