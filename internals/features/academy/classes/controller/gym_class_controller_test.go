package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classRoute "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/route"
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
	classRoute.GymClassRoutes(app.Group("/api"), gdb)
	return app, mock
}

func TestGenerateSchedule(t *testing.T) {
	app, mock := newTestApp(t)

	// dez/2023, segundas e quartas: lote de 8 aulas em um único insert
	rows := sqlmock.NewRows([]string{"id"})
	for i := 1; i <= 8; i++ {
		rows.AddRow(i)
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "gym_classes"`).WillReturnRows(rows)
	mock.ExpectCommit()

	body := `{"name":"Pilates","teacherId":7,"timeStart":"08:00","timeEnd":"09:00","startDate":"2023-12-01","endDate":"2023-12-31","weekDays":[1,3]}`
	req := httptest.NewRequest("POST", "/api/classes/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Data struct {
			Count   int    `json:"count"`
			GroupID string `json:"groupId"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 8, payload.Data.Count)
	assert.NotEmpty(t, payload.Data.GroupID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateScheduleEmptyWeekDays(t *testing.T) {
	app, mock := newTestApp(t)

	body := `{"name":"Pilates","teacherId":7,"timeStart":"08:00","timeEnd":"09:00","startDate":"2023-12-01","endDate":"2023-12-31","weekDays":[]}`
	req := httptest.NewRequest("POST", "/api/classes/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet(), "sem dia compatível, nada vai pro banco")
}

func TestGenerateScheduleBadDate(t *testing.T) {
	app, mock := newTestApp(t)

	body := `{"name":"Pilates","teacherId":7,"timeStart":"08:00","timeEnd":"09:00","startDate":"31-12-2023","endDate":"2023-12-31","weekDays":[1]}`
	req := httptest.NewRequest("POST", "/api/classes/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListClassesBadStartParam(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/classes/?start=ontem", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClassNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "gym_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("DELETE", "/api/classes/555", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
