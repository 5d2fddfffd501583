package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Post("/", ctrl.Create)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
