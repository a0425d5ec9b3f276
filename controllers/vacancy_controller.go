package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"roommgmt/config"
	"roommgmt/dto"
	"roommgmt/models"
	"roommgmt/response"
	"roommgmt/services"
	"roommgmt/utils"
)

// GetVacancyData trả về báo cáo trống phòng 6 tháng, đọc qua cache.
// Báo cáo luôn tính lại từ bản ghi gốc, cache chỉ là bản sao tạm.
func GetVacancyData(c *gin.Context) {
	var cached dto.VacancyReport
	if err := services.GetFromCache(services.CacheKeyVacancyReport, &cached); err == nil {
		response.Success(c, cached)
		return
	}

	report, err := services.GetSixMonthVacancyData(config.DB, time.Now())
	if err != nil {
		utils.LogError("Lỗi khi tính báo cáo trống phòng: %v", err)
		response.ServerError(c)
		return
	}

	if err := services.SetToCache(services.CacheKeyVacancyReport, report, 60*time.Minute); err != nil && err != services.ErrCacheUnavailable {
		utils.LogError("Lỗi khi ghi cache báo cáo trống phòng: %v", err)
	}

	response.Success(c, report)
}

// GetDashboard trả về dữ liệu trang tổng quan: số phòng, hiện trạng
// và các lượt nhận trả gần nhất
func GetDashboard(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Where("is_active = ?", true).Find(&rooms).Error; err != nil {
		utils.LogError("Lỗi khi lấy danh sách phòng: %v", err)
		response.ServerError(c)
		return
	}

	occupied, err := openRoomIDs()
	if err != nil {
		utils.LogError("Lỗi khi lấy trạng thái phòng: %v", err)
		response.ServerError(c)
		return
	}

	occupiedCount := 0
	for _, room := range rooms {
		if occupied[room.ID] {
			occupiedCount++
		}
	}

	var records []models.CheckInOut
	if err := config.DB.Preload("Room").
		Order("created_at DESC, id DESC").
		Limit(10).
		Find(&records).Error; err != nil {
		utils.LogError("Lỗi khi lấy bản ghi nhận trả: %v", err)
		response.ServerError(c)
		return
	}

	recent := make([]dto.CheckInOutResponse, 0, len(records))
	for _, record := range records {
		recent = append(recent, buildCheckInOutResponse(record, record.Room.RoomNumber))
	}

	response.Success(c, dto.DashboardResponse{
		TotalRooms:    len(rooms),
		OccupiedRooms: occupiedCount,
		VacantRooms:   len(rooms) - occupiedCount,
		RecentRecords: recent,
	})
}
