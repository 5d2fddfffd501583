package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := api.Group("/teachers")
	teachers.Get("/", ctrl.List)
	teachers.Get("/:id", ctrl.GetByID)
	teachers.Post("/", ctrl.Create)
	teachers.Put("/:id", ctrl.Update)
	teachers.Delete("/:id", ctrl.Delete)
}
