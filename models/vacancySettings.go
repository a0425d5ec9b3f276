package models

import "time"

type VacancySettings struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	EarlyCheckoutDay int       `json:"earlyCheckoutDay" gorm:"not null;default:5"` // Trả phòng trước ngày này là vacant
	LateCheckoutDay  int       `json:"lateCheckoutDay" gorm:"not null;default:25"` // Trả phòng từ ngày này trở đi là not_vacant
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
