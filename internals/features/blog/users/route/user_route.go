package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/users/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
}
