package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	studentRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/route"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New()
	studentRoute.StudentRoutes(app.Group("/api"), gdb)
	return app, mock
}

func studentColumns() []string {
	return []string{"id", "name", "cpf", "phone", "email", "plan", "start_date", "end_date", "photo", "created_at", "updated_at"}
}

// Trocar o plano recalcula o vencimento ancorado na matrícula original,
// não na data da edição.
func TestUpdateStudentPlanKeepsOriginalAnchor(t *testing.T) {
	app, mock := newTestApp(t)

	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endMensal := start.AddDate(0, 1, 0)

	mock.ExpectQuery(`SELECT (.+) FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns()).
			AddRow(1, "Maria Souza", "12345678901", "11999998888", "maria@example.com",
				"MENSAL", start, endMensal, nil, start, start))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "students"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/api/students/1", strings.NewReader(`{"plan":"ANUAL"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Plan    string    `json:"plan"`
			EndDate time.Time `json:"endDate"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "ANUAL", body.Data.Plan)
	assert.True(t, body.Data.EndDate.Equal(start.AddDate(0, 12, 0)),
		"endDate deve ser matrícula original + 12 meses, veio %s", body.Data.EndDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudentNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns()))

	req := httptest.NewRequest("PUT", "/api/students/42", strings.NewReader(`{"name":"Outro Nome"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudentEmptyPayload(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/students/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet(), "payload vazio não pode tocar o banco")
}

func TestDeleteStudentNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "students"`).
		WillReturnRows(sqlmock.NewRows(studentColumns()))

	req := httptest.NewRequest("DELETE", "/api/students/999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStudentInvalidID(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/students/naoexiste", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
