package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseID lê o parâmetro :id da rota. Retorna ok=false (e responde 400)
// quando o valor não é um inteiro positivo.
func ParseID(c *fiber.Ctx) (uint, bool) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		_ = Error(c, fiber.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return uint(id), true
}
