package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/dto"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/service"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

const dateLayout = "2006-01-02"

type GymClassController struct {
	DB *gorm.DB
}

func NewGymClassController(db *gorm.DB) *GymClassController {
	return &GymClassController{DB: db}
}

// GET /api/classes?start=YYYY-MM-DD&end=YYYY-MM-DD
// Sem parâmetros, devolve o mês corrente.
func (cc *GymClassController) List(c *fiber.Ctx) error {
	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parâmetro start inválido")
		}
		firstDay = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parâmetro end inválido")
		}
		lastDay = parsed
	}

	var classes []model.GymClassModel
	err := cc.DB.
		Where("date BETWEEN ? AND ?", firstDay, lastDay).
		Preload("Teacher").
		Order("date asc").
		Find(&classes).Error
	if err != nil {
		log.Println("[ERROR] Falha ao listar aulas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar aulas")
	}

	return helper.Success(c, "Aulas listadas com sucesso", fiber.Map{
		"total":   len(classes),
		"classes": classes,
	})
}

// POST /api/classes — criação avulsa
func (cc *GymClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateGymClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data inválida")
	}

	class := model.GymClassModel{
		Name:      req.Name,
		Date:      service.DateOnly(date),
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		TeacherID: req.TeacherID,
	}
	if err := cc.DB.Create(&class).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aula criada com sucesso", class)
}

// POST /api/classes/generate — geração em massa da agenda
func (cc *GymClassController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data inicial inválida")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data final inválida")
	}

	batch, groupID, err := service.ExpandSchedule(service.ScheduleInput{
		Name:      req.Name,
		TeacherID: req.TeacherID,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		Start:     start,
		End:       end,
		WeekDays:  req.WeekDays,
	})
	if err != nil {
		// inclui o caso weekDays vazio: nada a inserir, nunca 201 com count 0
		return helper.Error(c, fiber.StatusBadRequest, "Nenhum dia compatível encontrado no intervalo.")
	}

	// insert único: o lote entra inteiro ou não entra
	if err := cc.DB.Create(&batch).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	log.Printf("[SUCCESS] Agenda gerada: %d aulas, groupId=%s\n", len(batch), groupID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agenda gerada!", fiber.Map{
		"count":   len(batch),
		"groupId": groupID,
	})
}

// DELETE /api/classes/:id
func (cc *GymClassController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var class model.GymClassModel
	if err := cc.DB.First(&class, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := cc.DB.Delete(&class).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
