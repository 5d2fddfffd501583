package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financialController "github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/controller"
)

func FinancialRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := financialController.NewFinancialRecordController(db)

	financial := api.Group("/financial")
	financial.Get("/", ctrl.List)
	financial.Get("/summary", ctrl.Summary)
	financial.Post("/", ctrl.Create)
	financial.Delete("/:id", ctrl.Delete)
}
