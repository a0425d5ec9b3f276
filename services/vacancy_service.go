package services

import (
	"time"

	"gorm.io/gorm"

	"roommgmt/constants"
	"roommgmt/dto"
	"roommgmt/models"
)

// ClassifyCheckoutDay phân loại ngày trả phòng theo tiêu chí:
// trước earlyDay là vacant, từ lateDay trở đi là not_vacant, còn lại là
// partially_vacant. Hàm thuần, tiêu chí truyền vào tường minh.
// Điều kiện tiên quyết earlyDay < lateDay được đảm bảo khi cập nhật tiêu chí.
func ClassifyCheckoutDay(day, earlyDay, lateDay int) string {
	if day < earlyDay {
		return constants.DayStatusVacant
	}
	if day >= lateDay {
		return constants.DayStatusNotVacant
	}
	return constants.DayStatusPartial
}

// roomStatusOnDay xác định trạng thái của một phòng trong một ngày:
// có lượt trả đúng ngày đó thì phân loại theo ngày trả, khoảng lưu trú phủ
// ngày đó thì occupied, còn lại là future.
func roomStatusOnDay(records []models.CheckInOut, date time.Time, earlyDay, lateDay int) string {
	for _, record := range records {
		if record.CheckOutDate != nil && sameDay(*record.CheckOutDate, date) {
			return ClassifyCheckoutDay(record.CheckOutDate.Day(), earlyDay, lateDay)
		}
	}
	for _, record := range records {
		if coversDay(record, date) {
			return constants.DayStatusOccupied
		}
	}
	return constants.DayStatusFuture
}

// coversDay kiểm tra khoảng lưu trú có phủ ngày đó không:
// checkIn <= date < checkOut, bản ghi chưa trả phòng thì chỉ cần checkIn <= date
func coversDay(record models.CheckInOut, date time.Time) bool {
	checkIn := truncateDay(record.CheckInDate)
	if date.Before(checkIn) {
		return false
	}
	if record.CheckOutDate == nil {
		return true
	}
	return date.Before(truncateDay(*record.CheckOutDate))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateVacancyForMonth tính dữ liệu trống phòng cho một tháng.
// Mỗi ô ngày đếm đủ 5 trạng thái, tổng các trạng thái bằng số phòng hoạt động.
func CalculateVacancyForMonth(year int, month time.Month, rooms []models.Room, recordsByRoom map[uint][]models.CheckInOut, settings *models.VacancySettings) dto.VacancyMonth {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	monthData := dto.VacancyMonth{
		Name:           firstDay.Format("January 2006"),
		ShortName:      firstDay.Format("Jan 2006"),
		Year:           year,
		Month:          int(month),
		TotalRooms:     len(rooms),
		DailyBreakdown: make([]dto.VacancyDay, 0, daysInMonth),
	}

	roomHadCheckout := make(map[uint]bool)
	roomWasOccupied := make(map[uint]bool)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cell := dto.VacancyDay{
			Day:  day,
			Date: date.Format("2006-01-02"),
		}

		for _, room := range rooms {
			switch roomStatusOnDay(recordsByRoom[room.ID], date, settings.EarlyCheckoutDay, settings.LateCheckoutDay) {
			case constants.DayStatusVacant:
				cell.Vacant++
				roomHadCheckout[room.ID] = true
			case constants.DayStatusPartial:
				cell.Partial++
				roomHadCheckout[room.ID] = true
			case constants.DayStatusNotVacant:
				cell.NotVacant++
				roomHadCheckout[room.ID] = true
			case constants.DayStatusOccupied:
				cell.Occupied++
				roomWasOccupied[room.ID] = true
			default:
				cell.Future++
			}
		}

		// Trạng thái của ngày: mọi lượt trả cùng ngày phân loại giống nhau nên
		// ưu tiên phân loại trả phòng, sau đó đến occupied, còn lại là future
		switch {
		case cell.Vacant+cell.Partial+cell.NotVacant > 0:
			cell.Status = ClassifyCheckoutDay(day, settings.EarlyCheckoutDay, settings.LateCheckoutDay)
		case cell.Occupied > 0:
			cell.Status = constants.DayStatusOccupied
		default:
			cell.Status = constants.DayStatusFuture
		}

		monthData.VacantDays += cell.Vacant
		monthData.PartialDays += cell.Partial
		monthData.NotVacantDays += cell.NotVacant

		monthData.DailyBreakdown = append(monthData.DailyBreakdown, cell)
	}

	// Phòng có khách trong tháng nhưng không có lượt trả nào trong tháng
	for _, room := range rooms {
		if roomWasOccupied[room.ID] && !roomHadCheckout[room.ID] {
			monthData.OccupiedRooms++
		}
	}

	return monthData
}

// GetSixMonthVacancyData tổng hợp báo cáo trống phòng cho cửa sổ 6 tháng
// quanh ngày today. Heatmap và bar chart dẫn xuất từ cùng một dãy tháng.
// Phân loại luôn tính lại lúc đọc, không lưu xuống cơ sở dữ liệu.
func GetSixMonthVacancyData(db *gorm.DB, today time.Time) (*dto.VacancyReport, error) {
	settings, err := GetVacancySettings(db)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := db.Where("is_active = ?", true).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}

	var records []models.CheckInOut
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}

	recordsByRoom := make(map[uint][]models.CheckInOut)
	for _, record := range records {
		recordsByRoom[record.RoomID] = append(recordsByRoom[record.RoomID], record)
	}

	currentMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]dto.VacancyMonth, 0, constants.ReportMonthsBefore+constants.ReportMonthsAfter+1)
	for i := -constants.ReportMonthsBefore; i <= constants.ReportMonthsAfter; i++ {
		anchor := currentMonth.AddDate(0, i, 0)
		months = append(months, CalculateVacancyForMonth(anchor.Year(), anchor.Month(), rooms, recordsByRoom, settings))
	}

	barChart := dto.BarChartData{
		Labels:    make([]string, 0, len(months)),
		Vacant:    make([]int, 0, len(months)),
		Occupied:  make([]int, 0, len(months)),
		Partial:   make([]int, 0, len(months)),
		NotVacant: make([]int, 0, len(months)),
	}
	for _, monthData := range months {
		barChart.Labels = append(barChart.Labels, monthData.ShortName)
		barChart.Vacant = append(barChart.Vacant, monthData.VacantDays)
		barChart.Occupied = append(barChart.Occupied, monthData.OccupiedRooms)
		barChart.Partial = append(barChart.Partial, monthData.PartialDays)
		barChart.NotVacant = append(barChart.NotVacant, monthData.NotVacantDays)
	}

	occupiedToday := 0
	for _, room := range rooms {
		for _, record := range recordsByRoom[room.ID] {
			if record.CheckOutDate == nil {
				occupiedToday++
				break
			}
		}
	}

	vacantToday := len(rooms) - occupiedToday
	vacancyRate := 0.0
	if len(rooms) > 0 {
		vacancyRate = float64(vacantToday) / float64(len(rooms))
	}

	return &dto.VacancyReport{
		BarChart: barChart,
		Heatmap: dto.HeatmapData{
			Months:     months,
			TotalRooms: len(rooms),
			EarlyDay:   settings.EarlyCheckoutDay,
			LateDay:    settings.LateCheckoutDay,
		},
		Summary: dto.VacancySummary{
			TotalRooms:    len(rooms),
			OccupiedToday: occupiedToday,
			VacantToday:   vacantToday,
			VacancyRate:   vacancyRate,
			EarlyDay:      settings.EarlyCheckoutDay,
			LateDay:       settings.LateCheckoutDay,
		},
		Settings: BuildSettingsResponse(settings),
	}, nil
}
