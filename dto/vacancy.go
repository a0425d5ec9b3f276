package dto

// VacancyDay là một ô (tháng, ngày) trong lưới heatmap. Mỗi phòng hoạt động
// được tính đúng một lần: theo phân loại ngày trả phòng nếu trả đúng ngày đó,
// occupied nếu khoảng lưu trú phủ ngày đó, còn lại là future.
type VacancyDay struct {
	Day       int    `json:"day"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Vacant    int    `json:"vacant"`
	Occupied  int    `json:"occupied"`
	Partial   int    `json:"partial"`
	NotVacant int    `json:"notVacant"`
	Future    int    `json:"future"`
}

// VacancyMonth là dữ liệu trống phòng của một tháng. VacantDays/PartialDays/
// NotVacantDays cộng dồn phân loại trả phòng theo ngày; OccupiedRooms đếm số
// phòng không có lượt trả trong tháng nhưng có khách trong tháng.
type VacancyMonth struct {
	Name           string       `json:"name"`
	ShortName      string       `json:"shortName"`
	Year           int          `json:"year"`
	Month          int          `json:"month"`
	VacantDays     int          `json:"vacantDays"`
	PartialDays    int          `json:"partialDays"`
	NotVacantDays  int          `json:"notVacantDays"`
	OccupiedRooms  int          `json:"occupiedRooms"`
	TotalRooms     int          `json:"totalRooms"`
	DailyBreakdown []VacancyDay `json:"dailyBreakdown"`
}

// BarChartData là series cho biểu đồ cột chồng theo tháng
type BarChartData struct {
	Labels    []string `json:"labels"`
	Vacant    []int    `json:"vacant"`
	Occupied  []int    `json:"occupied"`
	Partial   []int    `json:"partial"`
	NotVacant []int    `json:"notVacant"`
}

// HeatmapData là dữ liệu cho calendar heatmap
type HeatmapData struct {
	Months     []VacancyMonth `json:"months"`
	TotalRooms int            `json:"totalRooms"`
	EarlyDay   int            `json:"earlyDay"`
	LateDay    int            `json:"lateDay"`
}

// VacancySummary là khối tổng hợp hiện trạng
type VacancySummary struct {
	TotalRooms    int     `json:"totalRooms"`
	OccupiedToday int     `json:"occupiedToday"`
	VacantToday   int     `json:"vacantToday"`
	VacancyRate   float64 `json:"vacancyRate"`
	EarlyDay      int     `json:"earlyDay"`
	LateDay       int     `json:"lateDay"`
}

// VacancyReport là payload đầy đủ của endpoint vacancy-data
type VacancyReport struct {
	BarChart BarChartData     `json:"barChart"`
	Heatmap  HeatmapData      `json:"heatmap"`
	Summary  VacancySummary   `json:"summary"`
	Settings SettingsResponse `json:"settings"`
}

// DashboardResponse là dữ liệu trang tổng quan
type DashboardResponse struct {
	TotalRooms    int                  `json:"totalRooms"`
	OccupiedRooms int                  `json:"occupiedRooms"`
	VacantRooms   int                  `json:"vacantRooms"`
	RecentRecords []CheckInOutResponse `json:"recentRecords"`
}
