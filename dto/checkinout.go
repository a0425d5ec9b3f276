package dto

import "time"

// CheckInRequest là DTO cho request nhận phòng, ngày theo định dạng dd/mm/yyyy
type CheckInRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	CheckInDate string `json:"checkInDate" binding:"required"`
}

// CheckOutRequest là DTO cho request trả phòng
type CheckOutRequest struct {
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Reason       string `json:"reason"`
}

type CheckInOutResponse struct {
	ID           uint      `json:"id"`
	RoomID       uint      `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate *string   `json:"checkOutDate"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
