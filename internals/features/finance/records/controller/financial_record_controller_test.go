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

	financialRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/route"
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
	financialRoute.FinancialRoutes(app.Group("/api"), gdb)
	return app, mock
}

func recordColumns() []string {
	return []string{"id", "type", "amount", "description", "date", "student_id", "teacher_id", "created_at", "updated_at"}
}

func TestFinancialSummary(t *testing.T) {
	app, mock := newTestApp(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "financial_records"`).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(1, "INCOME", 100.0, "Mensalidade", now, nil, nil, now, now).
			AddRow(2, "EXPENSE", 40.0, "Manutenção", now, nil, nil, now, now).
			AddRow(3, "INCOME", 10.0, "Avaliação física", now, nil, nil, now, now))

	req := httptest.NewRequest("GET", "/api/financial/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Income  float64 `json:"income"`
			Expense float64 `json:"expense"`
			Balance float64 `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 110.0, body.Data.Income)
	assert.Equal(t, 40.0, body.Data.Expense)
	assert.Equal(t, 70.0, body.Data.Balance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFinancialRecordInvalid(t *testing.T) {
	app, mock := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"tipo desconhecido", `{"type":"TRANSFER","amount":10,"description":"abc"}`},
		{"valor não positivo", `{"type":"INCOME","amount":0,"description":"abc"}`},
		{"descrição curta", `{"type":"INCOME","amount":10,"description":"ab"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/financial", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
	require.NoError(t, mock.ExpectationsWereMet(), "payload inválido não pode tocar o banco")
}

func TestDeleteFinancialRecordNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "financial_records"`).
		WillReturnRows(sqlmock.NewRows(recordColumns()))

	req := httptest.NewRequest("DELETE", "/api/financial/404", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
