package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roommgmt/config"
	"roommgmt/dto"
	"roommgmt/models"
	"roommgmt/response"
	"roommgmt/services"
	"roommgmt/utils"
	"roommgmt/validator"
)

// loadAllRooms đọc danh sách phòng qua cache, lỗi cache thì đọc thẳng DB
func loadAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := services.GetFromCache(services.CacheKeyRooms, &rooms); err == nil {
		return rooms, nil
	}

	if err := config.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToCache(services.CacheKeyRooms, rooms, 10*time.Minute); err != nil && err != services.ErrCacheUnavailable {
		utils.LogError("Lỗi khi ghi cache danh sách phòng: %v", err)
	}

	return rooms, nil
}

// openRoomIDs trả về tập ID các phòng đang có khách (bản ghi chưa trả phòng)
func openRoomIDs() (map[uint]bool, error) {
	var records []models.CheckInOut
	if err := config.DB.Where("check_out_date IS NULL").Find(&records).Error; err != nil {
		return nil, err
	}

	occupied := make(map[uint]bool, len(records))
	for _, record := range records {
		occupied[record.RoomID] = true
	}
	return occupied, nil
}

func buildRoomResponse(room models.Room, occupied bool) dto.RoomResponse {
	return dto.RoomResponse{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		RoomType:   room.RoomType,
		Floor:      room.Floor,
		IsActive:   room.IsActive,
		Occupied:   occupied,
		CreatedAt:  room.CreatedAt,
	}
}

// GetAllRooms lấy danh sách phòng có lọc và phân trang
func GetAllRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rooms, err := loadAllRooms()
	if err != nil {
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

	floorFilter := c.Query("floor")
	typeFilter := c.Query("type")
	numberFilter := c.Query("number")
	activeFilter := c.Query("active")

	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if floorFilter != "" {
			floor, err := strconv.Atoi(floorFilter)
			if err != nil || room.Floor != floor {
				continue
			}
		}
		if typeFilter != "" && !strings.EqualFold(room.RoomType, typeFilter) {
			continue
		}
		if numberFilter != "" && !strings.Contains(strings.ToLower(room.RoomNumber), strings.ToLower(numberFilter)) {
			continue
		}
		if activeFilter != "" {
			active, err := strconv.ParseBool(activeFilter)
			if err != nil || room.IsActive != active {
				continue
			}
		}
		filtered = append(filtered, room)
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	list := make([]dto.RoomResponse, 0, end-start)
	for _, room := range filtered[start:end] {
		list = append(list, buildRoomResponse(room, occupied[room.ID]))
	}

	response.SuccessWithPagination(c, list, page, limit, total)
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		RoomType:   req.RoomType,
		Floor:      req.Floor,
		IsActive:   true,
	}
	if room.RoomType == "" {
		room.RoomType = "Standard"
	}
	if room.Floor == 0 {
		room.Floor = 1
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, errMessage(err))
		return
	}

	var count int64
	if err := config.DB.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		utils.LogError("Lỗi khi kiểm tra số phòng: %v", err)
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Phòng "+room.RoomNumber+" đã tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		utils.LogError("Lỗi khi tạo phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches()
	response.Success(c, buildRoomResponse(room, false))
}

// GetRoomDetail lấy chi tiết phòng kèm lịch sử nhận trả
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("CheckInOuts").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	detail := dto.RoomDetail{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		RoomType:   room.RoomType,
		Floor:      room.Floor,
		IsActive:   room.IsActive,
		CreatedAt:  room.CreatedAt,
		Records:    make([]dto.CheckInOutResponse, 0, len(room.CheckInOuts)),
	}
	for _, record := range room.CheckInOuts {
		if record.CheckOutDate == nil {
			detail.Occupied = true
		}
		detail.Records = append(detail.Records, buildCheckInOutResponse(record, room.RoomNumber))
	}

	response.Success(c, detail)
}

// UpdateRoom cập nhật thông tin phòng, trường nào không gửi thì giữ nguyên
func UpdateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.RoomNumber != "" && req.RoomNumber != room.RoomNumber {
		var count int64
		if err := config.DB.Model(&models.Room{}).Where("room_number = ? AND id <> ?", req.RoomNumber, room.ID).Count(&count).Error; err != nil {
			utils.LogError("Lỗi khi kiểm tra số phòng: %v", err)
			response.ServerError(c)
			return
		}
		if count > 0 {
			response.Conflict(c, "Phòng "+req.RoomNumber+" đã tồn tại")
			return
		}
		room.RoomNumber = req.RoomNumber
	}
	if req.RoomType != "" {
		room.RoomType = req.RoomType
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, errMessage(err))
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		utils.LogError("Lỗi khi cập nhật phòng: %v", err)
		response.ServerError(c)
		return
	}

	occupied, err := openRoomIDs()
	if err != nil {
		utils.LogError("Lỗi khi lấy trạng thái phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches()
	response.Success(c, buildRoomResponse(room, occupied[room.ID]))
}

// ChangeRoomStatus bật/tắt trạng thái hoạt động của phòng.
// Phòng tắt hoạt động vẫn giữ nguyên lịch sử, chỉ bị loại khỏi báo cáo.
func ChangeRoomStatus(c *gin.Context) {
	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.IsActive = *req.IsActive
	if err := config.DB.Save(&room).Error; err != nil {
		utils.LogError("Lỗi khi đổi trạng thái phòng: %v", err)
		response.ServerError(c)
		return
	}

	occupied, err := openRoomIDs()
	if err != nil {
		utils.LogError("Lỗi khi lấy trạng thái phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches()
	response.Success(c, buildRoomResponse(room, occupied[room.ID]))
}

// DeleteRoom xóa phòng chưa từng có lịch sử nhận trả.
// Phòng đã có lịch sử thì chỉ được tắt hoạt động qua ChangeRoomStatus.
func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	if err := config.DB.Model(&models.CheckInOut{}).Where("room_id = ?", room.ID).Count(&count).Error; err != nil {
		utils.LogError("Lỗi khi kiểm tra lịch sử phòng: %v", err)
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Phòng "+room.RoomNumber+" đã có lịch sử nhận trả, chỉ có thể tắt hoạt động")
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		utils.LogError("Lỗi khi xóa phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches()
	response.Success(c, gin.H{"id": room.ID})
}

// GetAvailableRooms lấy danh sách phòng hoạt động và đang trống
func GetAvailableRooms(c *gin.Context) {
	rooms, err := loadAllRooms()
	if err != nil {
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

	list := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if room.IsActive && !occupied[room.ID] {
			list = append(list, buildRoomResponse(room, false))
		}
	}

	response.Success(c, list)
}
