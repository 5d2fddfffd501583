package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/controller"
)

func GymClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classController.NewGymClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", ctrl.List)
	classes.Post("/", ctrl.Create)
	classes.Post("/generate", ctrl.Generate)
	classes.Delete("/:id", ctrl.Delete)
}
