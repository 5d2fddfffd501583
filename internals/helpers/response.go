package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Resposta de sucesso padrão (200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Resposta de sucesso com código custom (ex.: 201 para created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Resposta de erro simples
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Resposta de erro com detalhes por campo
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ✅ Erro de validação (validator.v10) → 400 com mapa campo→mensagem
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = validationMessage(fieldErr)
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Dados inválidos", errorsMap)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "numeric":
		return "Deve conter apenas números"
	case "len":
		return "Deve ter exatamente " + fe.Param() + " caracteres"
	case "min":
		return "Deve ter no mínimo " + fe.Param() + " caracteres"
	case "max":
		return "Deve ter no máximo " + fe.Param() + " caracteres"
	case "oneof":
		return "Deve ser um de: " + fe.Param()
	case "classtype":
		return "Tipo de aula inválido"
	case "gt":
		return "Deve ser maior que " + fe.Param()
	case "datetime":
		return "Formato de data/hora inválido"
	case "nameletters":
		return "Deve conter apenas letras"
	default:
		return "Formato inválido"
	}
}
