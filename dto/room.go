package dto

import "time"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomType   string `json:"roomType"`
	Floor      int    `json:"floor"`
}

// RoomRequest là DTO cho request cập nhật phòng
type RoomRequest struct {
	RoomID     uint   `json:"id" binding:"required"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	Floor      *int   `json:"floor"`
}

// RoomStatusRequest là DTO cho request bật/tắt hoạt động của phòng
type RoomStatusRequest struct {
	RoomID   uint  `json:"id" binding:"required"`
	IsActive *bool `json:"isActive" binding:"required"`
}

type RoomResponse struct {
	RoomID     uint      `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	Floor      int       `json:"floor"`
	IsActive   bool      `json:"isActive"`
	Occupied   bool      `json:"occupied"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RoomDetail là DTO cho thông tin chi tiết của phòng kèm lịch sử nhận trả
type RoomDetail struct {
	RoomID     uint                 `json:"id"`
	RoomNumber string               `json:"roomNumber"`
	RoomType   string               `json:"roomType"`
	Floor      int                  `json:"floor"`
	IsActive   bool                 `json:"isActive"`
	Occupied   bool                 `json:"occupied"`
	CreatedAt  time.Time            `json:"createdAt"`
	Records    []CheckInOutResponse `json:"records"`
}
