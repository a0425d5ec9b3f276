package controllers

import (
	"github.com/gin-gonic/gin"

	"roommgmt/config"
	"roommgmt/dto"
	apperrors "roommgmt/errors"
	"roommgmt/response"
	"roommgmt/services"
	"roommgmt/utils"
)

// GetSettings lấy tiêu chí trống phòng hiện tại
func GetSettings(c *gin.Context) {
	settings, err := services.GetVacancySettings(config.DB)
	if err != nil {
		utils.LogError("Lỗi khi lấy tiêu chí trống phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, services.BuildSettingsResponse(settings))
}

// UpdateSettings cập nhật tiêu chí trống phòng, sau đó xóa cache báo cáo
// vì mọi phân loại phải tính lại theo tiêu chí mới
func UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	settings, err := services.UpdateVacancySettings(config.DB, req.EarlyCheckoutDay, req.LateCheckoutDay)
	if err != nil {
		if apperrors.IsAppError(err) {
			response.ValidationError(c, errMessage(err))
			return
		}
		utils.LogError("Lỗi khi cập nhật tiêu chí trống phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches()
	response.Success(c, services.BuildSettingsResponse(settings))
}
