package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/comments/controller"
)

func CommentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := commentController.NewCommentController(db)

	comments := api.Group("/comments")
	comments.Get("/", ctrl.List)
	comments.Get("/:id", ctrl.GetByID)
	comments.Post("/", ctrl.Create)
	comments.Put("/:id", ctrl.Update)
	comments.Delete("/:id", ctrl.Delete)
}
