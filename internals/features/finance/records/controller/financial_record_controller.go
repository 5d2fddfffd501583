package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/dto"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/service"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

type FinancialRecordController struct {
	DB *gorm.DB
}

func NewFinancialRecordController(db *gorm.DB) *FinancialRecordController {
	return &FinancialRecordController{DB: db}
}

// GET /api/financial
func (fc *FinancialRecordController) List(c *fiber.Ctx) error {
	var records []model.FinancialRecordModel
	err := fc.DB.
		Preload("Student", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("Teacher", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Order("date desc").
		Find(&records).Error
	if err != nil {
		log.Println("[ERROR] Falha ao listar lançamentos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar lançamentos")
	}

	return helper.Success(c, "Lançamentos listados com sucesso", fiber.Map{
		"total":   len(records),
		"records": records,
	})
}

// GET /api/financial/summary — saldo e totais por categoria.
// Recalculado do conjunto inteiro a cada leitura; nada é persistido.
func (fc *FinancialRecordController) Summary(c *fiber.Ctx) error {
	var records []model.FinancialRecordModel
	if err := fc.DB.Find(&records).Error; err != nil {
		log.Println("[ERROR] Falha ao agregar lançamentos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao calcular saldo")
	}

	return helper.Success(c, "Saldo calculado", service.Summarize(records))
}

// POST /api/financial
func (fc *FinancialRecordController) Create(c *fiber.Ctx) error {
	var req dto.CreateFinancialRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	record := model.FinancialRecordModel{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        time.Now(),
		StudentID:   req.StudentID,
		TeacherID:   req.TeacherID,
	}
	if err := fc.DB.Create(&record).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lançamento criado com sucesso", record)
}

// DELETE /api/financial/:id
func (fc *FinancialRecordController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var record model.FinancialRecordModel
	if err := fc.DB.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := fc.DB.Delete(&record).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
