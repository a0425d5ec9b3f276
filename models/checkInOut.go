package models

import "time"

type CheckInOut struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RoomID       uint       `json:"roomId" gorm:"index;not null"`
	CheckInDate  time.Time  `json:"checkInDate" gorm:"not null"`
	CheckOutDate *time.Time `json:"checkOutDate"` // null nghĩa là phòng đang có khách
	Reason       string     `json:"reason" gorm:"size:255"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	Room         Room       `json:"-" gorm:"foreignKey:RoomID"`
}

// IsCurrentlyOccupied kiểm tra phòng còn đang có khách không (chưa có ngày trả)
func (r *CheckInOut) IsCurrentlyOccupied() bool {
	return r.CheckOutDate == nil
}
