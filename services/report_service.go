package services

import (
	"time"

	"gorm.io/gorm"

	"roommgmt/utils"
)

// VacancyReportService tính lại báo cáo trống phòng và làm nóng cache
type VacancyReportService struct {
	DB *gorm.DB
}

func NewVacancyReportService(db *gorm.DB) *VacancyReportService {
	return &VacancyReportService{DB: db}
}

// RefreshVacancyReport tính lại báo cáo 6 tháng và ghi đè cache.
// Không có Redis thì bỏ qua, lần đọc sau sẽ tự tính lại.
func (s *VacancyReportService) RefreshVacancyReport() error {
	report, err := GetSixMonthVacancyData(s.DB, time.Now())
	if err != nil {
		utils.LogError("Lỗi khi tính lại báo cáo trống phòng: %v", err)
		return err
	}

	if err := SetToCache(CacheKeyVacancyReport, report, 24*time.Hour); err != nil {
		if err != ErrCacheUnavailable {
			utils.LogError("Lỗi khi ghi cache báo cáo trống phòng: %v", err)
		}
		return nil
	}

	utils.LogInfo("Đã làm mới cache báo cáo trống phòng")
	return nil
}
