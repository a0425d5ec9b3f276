package jobs

import (
	"github.com/robfig/cron/v3"

	"roommgmt/utils"
)

// VacancyReportRefresher tính lại báo cáo trống phòng và làm nóng cache
type VacancyReportRefresher interface {
	RefreshVacancyReport() error
}

var reportRefresher VacancyReportRefresher

// SetVacancyReportRefresher gắn service làm mới báo cáo cho cron job
func SetVacancyReportRefresher(r VacancyReportRefresher) {
	reportRefresher = r
}

// InitCronJobs đăng ký và khởi động các cron job
func InitCronJobs(c *cron.Cron) {
	_, err := c.AddFunc("0 0 * * *", func() {
		if reportRefresher == nil {
			return
		}
		utils.LogInfo("Cron: bắt đầu làm mới báo cáo trống phòng")
		if err := reportRefresher.RefreshVacancyReport(); err != nil {
			utils.LogError("Cron: lỗi khi làm mới báo cáo trống phòng: %v", err)
		}
	})
	if err != nil {
		utils.LogError("Lỗi khi đăng ký cron job: %v", err)
		return
	}

	c.Start()
	utils.LogInfo("Cron jobs đã được khởi động")
}
