package services

import (
	"errors"

	"gorm.io/gorm"

	"roommgmt/constants"
	"roommgmt/dto"
	"roommgmt/models"
	"roommgmt/validator"
)

// GetVacancySettings lấy tiêu chí trống phòng, tự tạo bản ghi mặc định
// nếu chưa có. Luôn chỉ có một bản ghi tiêu chí duy nhất.
func GetVacancySettings(db *gorm.DB) (*models.VacancySettings, error) {
	var settings models.VacancySettings
	err := db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.VacancySettings{
		EarlyCheckoutDay: constants.DefaultEarlyCheckoutDay,
		LateCheckoutDay:  constants.DefaultLateCheckoutDay,
	}
	if err := db.Create(&settings).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateVacancySettings validate và cập nhật tiêu chí trống phòng
func UpdateVacancySettings(db *gorm.DB, earlyDay, lateDay int) (*models.VacancySettings, error) {
	if err := validator.ValidateVacancySettings(earlyDay, lateDay); err != nil {
		return nil, err
	}

	settings, err := GetVacancySettings(db)
	if err != nil {
		return nil, err
	}

	settings.EarlyCheckoutDay = earlyDay
	settings.LateCheckoutDay = lateDay
	if err := db.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// BuildSettingsResponse chuyển model tiêu chí sang response
func BuildSettingsResponse(settings *models.VacancySettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		ID:               settings.ID,
		EarlyCheckoutDay: settings.EarlyCheckoutDay,
		LateCheckoutDay:  settings.LateCheckoutDay,
		CreatedAt:        settings.CreatedAt,
		UpdatedAt:        settings.UpdatedAt,
	}
}
