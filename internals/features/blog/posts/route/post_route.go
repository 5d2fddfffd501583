package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postController "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/posts/controller"
)

func PostRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := postController.NewPostController(db)

	posts := api.Group("/posts")
	posts.Get("/", ctrl.List)
	posts.Get("/:id", ctrl.GetByID)
	posts.Post("/", ctrl.Create)
	posts.Put("/:id", ctrl.Update)
	posts.Delete("/:id", ctrl.Delete)
}
