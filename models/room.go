package models

import (
	"time"
)

type Room struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	RoomNumber  string       `json:"roomNumber" gorm:"size:20;uniqueIndex;not null"`
	RoomType    string       `json:"roomType" gorm:"size:50;not null;default:Standard"`
	Floor       int          `json:"floor" gorm:"not null;default:1"`
	IsActive    bool         `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	CheckInOuts []CheckInOut `json:"-" gorm:"foreignKey:RoomID"`
}
