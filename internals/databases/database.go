package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/model"
	studentModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/model"
	teacherModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/model"
	blogModel "github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
	financialModel "github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=crud_academia&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate cria/atualiza o schema das entidades da aplicação.
func Migrate() {
	err := DB.AutoMigrate(
		&blogModel.UserModel{},
		&blogModel.PostModel{},
		&blogModel.CommentModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&classModel.GymClassModel{},
		&financialModel.FinancialRecordModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha ao migrar schema: %v", err)
	}
	log.Println("✅ Schema migrado.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
