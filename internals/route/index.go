package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/route"
	studentRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/route"
	teacherRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/route"
	commentRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/comments/route"
	postRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/posts/route"
	userRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/users/route"
	financialRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/route"
	authRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting Blog routes...")
	userRoute.UserRoutes(api, db)
	postRoute.PostRoutes(api, db)
	commentRoute.CommentRoutes(api, db)

	log.Println("[INFO] Mounting Academy routes...")
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	classRoute.GymClassRoutes(api, db)

	log.Println("[INFO] Mounting Finance routes...")
	financialRoute.FinancialRoutes(api, db)
}
