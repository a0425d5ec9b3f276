package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommgmt/dto"
)

func TestGetVacancyDataShape(t *testing.T) {
	router := setupTestRouter(t)

	room := mustCreateRoom(t, "101", "Standard", 1, true)
	mustCreateRoom(t, "102", "Standard", 1, true)
	checkIn := time.Now().UTC().AddDate(0, 0, -3)
	mustCreateRecord(t, room.ID, checkIn, nil)

	w := performRequest(t, router, http.MethodGet, "/api/v1/vacancy-data", nil)
	var report dto.VacancyReport
	parseData(t, w, &report)

	require.Len(t, report.Heatmap.Months, 6)
	assert.Len(t, report.BarChart.Labels, 6)
	assert.Equal(t, 2, report.Heatmap.TotalRooms)
	assert.Equal(t, 1, report.Summary.OccupiedToday)
	assert.Equal(t, 1, report.Summary.VacantToday)
	assert.InDelta(t, 0.5, report.Summary.VacancyRate, 1e-9)
	assert.Equal(t, 5, report.Settings.EarlyCheckoutDay)
	assert.Equal(t, 25, report.Settings.LateCheckoutDay)

	for _, month := range report.Heatmap.Months {
		for _, cell := range month.DailyBreakdown {
			sum := cell.Vacant + cell.Occupied + cell.Partial + cell.NotVacant + cell.Future
			assert.Equal(t, 2, sum, "tháng %d ngày %d", month.Month, cell.Day)
		}
	}
}

func TestGetVacancyDataDeterministic(t *testing.T) {
	router := setupTestRouter(t)

	room := mustCreateRoom(t, "101", "Standard", 1, true)
	checkIn := time.Now().UTC().AddDate(0, 0, -10)
	checkOut := time.Now().UTC().AddDate(0, 0, -5)
	mustCreateRecord(t, room.ID, checkIn, &checkOut)

	first := performRequest(t, router, http.MethodGet, "/api/v1/vacancy-data", nil)
	second := performRequest(t, router, http.MethodGet, "/api/v1/vacancy-data", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	// Không có ghi nào xen giữa, hai lần đọc phải trả cùng một báo cáo
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetDashboard(t *testing.T) {
	router := setupTestRouter(t)

	occupied := mustCreateRoom(t, "101", "Standard", 1, true)
	mustCreateRoom(t, "102", "Standard", 1, true)
	mustCreateRoom(t, "103", "Standard", 1, false)

	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	mustCreateRecord(t, occupied.ID, checkIn, nil)

	w := performRequest(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	var dashboard dto.DashboardResponse
	parseData(t, w, &dashboard)

	assert.Equal(t, 2, dashboard.TotalRooms)
	assert.Equal(t, 1, dashboard.OccupiedRooms)
	assert.Equal(t, 1, dashboard.VacantRooms)
	require.Len(t, dashboard.RecentRecords, 1)
	assert.Equal(t, "101", dashboard.RecentRecords[0].RoomNumber)
}
