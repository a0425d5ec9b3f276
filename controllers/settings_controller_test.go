package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommgmt/dto"
)

func TestGetSettingsLazyDefault(t *testing.T) {
	router := setupTestRouter(t)

	// Chưa có bản ghi tiêu chí, lần đọc đầu tự tạo mặc định
	w := performRequest(t, router, http.MethodGet, "/api/v1/settings", nil)
	var settings dto.SettingsResponse
	parseData(t, w, &settings)
	assert.Equal(t, 5, settings.EarlyCheckoutDay)
	assert.Equal(t, 25, settings.LateCheckoutDay)
}

func TestUpdateSettings(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(t, router, http.MethodPut, "/api/v1/settings", gin.H{
		"earlyCheckoutDay": 10,
		"lateCheckoutDay":  20,
	})
	var settings dto.SettingsResponse
	parseData(t, w, &settings)
	assert.Equal(t, 10, settings.EarlyCheckoutDay)
	assert.Equal(t, 20, settings.LateCheckoutDay)

	// Đọc lại phải thấy giá trị mới
	w = performRequest(t, router, http.MethodGet, "/api/v1/settings", nil)
	parseData(t, w, &settings)
	assert.Equal(t, 10, settings.EarlyCheckoutDay)
}

func TestUpdateSettingsRejectsInvalid(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name  string
		early int
		late  int
	}{
		{"sớm ngoài biên", 29, 31},
		{"muộn ngoài biên", 5, 32},
		{"sớm không trước muộn", 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, http.MethodPut, "/api/v1/settings", gin.H{
				"earlyCheckoutDay": tt.early,
				"lateCheckoutDay":  tt.late,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Tiêu chí không bị thay đổi
	w := performRequest(t, router, http.MethodGet, "/api/v1/settings", nil)
	var settings dto.SettingsResponse
	parseData(t, w, &settings)
	require.Equal(t, 5, settings.EarlyCheckoutDay)
	require.Equal(t, 25, settings.LateCheckoutDay)
}
