package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/posts/dto"
	helper "github.com/Mariocbneto/CRUD-Academia/internals/helpers"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// GET /api/posts
func (pc *PostController) List(c *fiber.Ctx) error {
	var posts []model.PostModel
	if err := pc.DB.Preload("User").Preload("Comments").Find(&posts).Error; err != nil {
		log.Println("[ERROR] Falha ao listar posts:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar posts")
	}

	return helper.Success(c, "Posts listados com sucesso", fiber.Map{
		"total": len(posts),
		"posts": posts,
	})
}

// GET /api/posts/:id
func (pc *PostController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var post model.PostModel
	if err := pc.DB.Preload("User").Preload("Comments").First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Post não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Post encontrado", post)
}

// POST /api/posts
func (pc *PostController) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	post := req.ToModel()
	if err := pc.DB.Create(&post).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post criado com sucesso", post)
}

// PUT /api/posts/:id
func (pc *PostController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if !req.HasChanges() {
		return helper.Error(c, fiber.StatusBadRequest, "Forneça ao menos um campo para atualizar")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.PostModel
	if err := pc.DB.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Post não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	req.Apply(&post)
	if err := pc.DB.Save(&post).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return helper.Success(c, "Post atualizado com sucesso", post)
}

// DELETE /api/posts/:id
func (pc *PostController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c)
	if !ok {
		return nil
	}

	var post model.PostModel
	if err := pc.DB.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Post não encontrado")
		}
		return helper.MapDBError(c, err, "")
	}

	if err := pc.DB.Delete(&post).Error; err != nil {
		return helper.MapDBError(c, err, "")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
