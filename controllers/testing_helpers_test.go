package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"roommgmt/config"
	"roommgmt/models"
	"roommgmt/response"
)

// Các test controller dùng chung config.DB toàn cục nên không chạy song song

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.CheckInOut{}, &models.VacancySettings{}))

	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/rooms", GetAllRooms)
		api.POST("/rooms", CreateRoom)
		api.GET("/rooms/:id", GetRoomDetail)
		api.DELETE("/rooms/:id", DeleteRoom)
		api.PUT("/roomUpdate", UpdateRoom)
		api.PUT("/roomStatus", ChangeRoomStatus)
		api.GET("/availableRooms", GetAvailableRooms)
		api.POST("/checkin", CheckIn)
		api.POST("/checkout/:id", CheckOut)
		api.GET("/records", GetCheckInOuts)
		api.GET("/dashboard", GetDashboard)
		api.GET("/vacancy-data", GetVacancyData)
		api.GET("/settings", GetSettings)
		api.PUT("/settings", UpdateSettings)
	}
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code       int                  `json:"code"`
	Mess       string               `json:"mess"`
	Data       json.RawMessage      `json:"data"`
	Pagination *response.Pagination `json:"pagination"`
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func parseData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	env := parseEnvelope(t, w)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func mustCreateRoom(t *testing.T, number, roomType string, floor int, active bool) models.Room {
	t.Helper()

	room := models.Room{RoomNumber: number, RoomType: roomType, Floor: floor, IsActive: active}
	require.NoError(t, config.DB.Create(&room).Error)
	return room
}

func mustCreateRecord(t *testing.T, roomID uint, checkIn time.Time, checkOut *time.Time) models.CheckInOut {
	t.Helper()

	record := models.CheckInOut{RoomID: roomID, CheckInDate: checkIn, CheckOutDate: checkOut}
	require.NoError(t, config.DB.Create(&record).Error)
	return record
}
