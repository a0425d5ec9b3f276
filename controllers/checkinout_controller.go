package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"roommgmt/config"
	"roommgmt/constants"
	"roommgmt/dto"
	apperrors "roommgmt/errors"
	"roommgmt/models"
	"roommgmt/response"
	"roommgmt/services"
	"roommgmt/utils"
	"roommgmt/validator"
)

const dateLayout = "02/01/2006"

// errMessage lấy message người dùng đọc được từ AppError,
// lỗi khác trả về message chung
func errMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Dữ liệu không hợp lệ"
}

func buildCheckInOutResponse(record models.CheckInOut, roomNumber string) dto.CheckInOutResponse {
	resp := dto.CheckInOutResponse{
		ID:          record.ID,
		RoomID:      record.RoomID,
		RoomNumber:  roomNumber,
		CheckInDate: record.CheckInDate.Format(dateLayout),
		Reason:      record.Reason,
		CreatedAt:   record.CreatedAt,
	}
	if record.CheckOutDate != nil {
		checkOut := record.CheckOutDate.Format(dateLayout)
		resp.CheckOutDate = &checkOut
	}
	return resp
}

// CheckIn ghi nhận khách nhận phòng. Mỗi phòng chỉ có tối đa một bản ghi
// chưa trả phòng, kiểm tra trong cùng transaction với thao tác tạo.
func CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	checkInDate, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ, định dạng dd/mm/yyyy")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !room.IsActive {
		response.BadRequest(c, "Phòng "+room.RoomNumber+" đang ngừng hoạt động")
		return
	}

	record := models.CheckInOut{
		RoomID:      room.ID,
		CheckInDate: checkInDate,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.CheckInOut{}).
			Where("room_id = ? AND check_out_date IS NULL", room.ID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return apperrors.ErrRoomOccupied
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomOccupied) {
			response.Conflict(c, "Phòng "+room.RoomNumber+" đang có khách")
			return
		}
		utils.LogError("Lỗi khi nhận phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.BroadcastRoomEvent(constants.EventCheckIn, room.ID, room.RoomNumber)
	services.InvalidateRoomCaches()
	response.Success(c, buildCheckInOutResponse(record, room.RoomNumber))
}

// CheckOut ghi nhận khách trả phòng cho bản ghi đang mở của phòng
func CheckOut(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil || roomID < 1 {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	checkOutDate, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ, định dạng dd/mm/yyyy")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var record models.CheckInOut
	if err := config.DB.Where("room_id = ? AND check_out_date IS NULL", room.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Conflict(c, "Phòng "+room.RoomNumber+" không có khách")
			return
		}
		utils.LogError("Lỗi khi tìm bản ghi nhận phòng: %v", err)
		response.ServerError(c)
		return
	}

	if err := validator.ValidateCheckOutDate(record.CheckInDate, checkOutDate); err != nil {
		response.ValidationError(c, errMessage(err))
		return
	}

	record.CheckOutDate = &checkOutDate
	record.Reason = req.Reason
	if err := config.DB.Save(&record).Error; err != nil {
		utils.LogError("Lỗi khi trả phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.BroadcastRoomEvent(constants.EventCheckOut, room.ID, room.RoomNumber)
	services.InvalidateRoomCaches()
	response.Success(c, buildCheckInOutResponse(record, room.RoomNumber))
}

// GetCheckInOuts lấy danh sách bản ghi nhận trả, mới nhất trước,
// có lọc theo phòng và phân trang
func GetCheckInOuts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := config.DB.Model(&models.CheckInOut{})
	if roomID := c.Query("roomId"); roomID != "" {
		id, err := strconv.Atoi(roomID)
		if err != nil || id < 1 {
			response.BadRequest(c, "ID phòng không hợp lệ")
			return
		}
		query = query.Where("room_id = ?", id)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Lỗi khi đếm bản ghi nhận trả: %v", err)
		response.ServerError(c)
		return
	}

	var records []models.CheckInOut
	if err := query.Preload("Room").
		Order("check_in_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		utils.LogError("Lỗi khi lấy bản ghi nhận trả: %v", err)
		response.ServerError(c)
		return
	}

	list := make([]dto.CheckInOutResponse, 0, len(records))
	for _, record := range records {
		list = append(list, buildCheckInOutResponse(record, record.Room.RoomNumber))
	}

	response.SuccessWithPagination(c, list, page, limit, int(total))
}
