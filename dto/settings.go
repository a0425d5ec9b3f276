package dto

import "time"

// UpdateSettingsRequest là DTO cho request cập nhật tiêu chí trống phòng
type UpdateSettingsRequest struct {
	EarlyCheckoutDay int `json:"earlyCheckoutDay" binding:"required"`
	LateCheckoutDay  int `json:"lateCheckoutDay" binding:"required"`
}

type SettingsResponse struct {
	ID               uint      `json:"id"`
	EarlyCheckoutDay int       `json:"earlyCheckoutDay"`
	LateCheckoutDay  int       `json:"lateCheckoutDay"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
