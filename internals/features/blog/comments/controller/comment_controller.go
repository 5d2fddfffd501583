package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/comments/dto"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// GET /api/comments
func (cc *CommentController) List(c *fiber.Ctx) error {
	var comments []model.CommentModel
	if err := cc.DB.Preload("Post").Preload("User").Find(&comments).Error; err != nil {
		log.Println("[ERROR] Falha ao listar comentários:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar comentários")
	}

	return helper.Success(c, "Comentários listados com sucesso", fiber.Map{
		"total":    len(comments),
		"comments": comments,
	})
}

// GET /api/comments/:id
func (cc *CommentController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var comment model.CommentModel
	if err := cc.DB.Preload("Post").Preload("User").First(&comment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Comentário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Comentário encontrado", comment)
}

// POST /api/comments
func (cc *CommentController) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	comment := req.ToModel()
	if err := cc.DB.Create(&comment).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comentário criado com sucesso", comment)
}

// PUT /api/comments/:id
func (cc *CommentController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if !req.HasChanges() {
		return helper.Error(c, fiber.StatusBadRequest, "Forneça ao menos um campo para atualizar")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var comment model.CommentModel
	if err := cc.DB.First(&comment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Comentário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	req.Apply(&comment)
	if err := cc.DB.Save(&comment).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Comentário atualizado com sucesso", comment)
}

// DELETE /api/comments/:id
func (cc *CommentController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var comment model.CommentModel
	if err := cc.DB.First(&comment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Comentário não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
