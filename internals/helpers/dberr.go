package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation detecta violação de constraint única vinda do Postgres.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// MapDBError converte erros de persistência em resposta HTTP:
// unique violation → 409, qualquer outro → 500 com corpo genérico.
func MapDBError(c *fiber.Ctx, err error, conflictMsg string) error {
	if IsUniqueViolation(err) {
		return Error(c, fiber.StatusConflict, conflictMsg)
	}
	log.Printf("[ERROR] db: %v", err)
	return Error(c, fiber.StatusInternalServerError, "Erro interno do servidor")
}
