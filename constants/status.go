package constants

// Trạng thái của một ngày trong báo cáo trống phòng
const (
	DayStatusVacant    = "vacant"
	DayStatusPartial   = "partially_vacant"
	DayStatusNotVacant = "not_vacant"
	DayStatusOccupied  = "occupied"
	DayStatusFuture    = "future"
)

// Tiêu chí trống phòng mặc định
const (
	DefaultEarlyCheckoutDay = 5
	DefaultLateCheckoutDay  = 25
)

// Giới hạn hợp lệ cho tiêu chí trống phòng
const (
	MinEarlyCheckoutDay = 1
	MaxEarlyCheckoutDay = 28
	MinLateCheckoutDay  = 1
	MaxLateCheckoutDay  = 31
)

// Cửa sổ báo cáo: 3 tháng trước + tháng hiện tại + 2 tháng sau,
// heatmap và bar chart dùng chung một cửa sổ
const (
	ReportMonthsBefore = 3
	ReportMonthsAfter  = 2
)

// Sự kiện websocket
const (
	EventCheckIn  = "check_in"
	EventCheckOut = "check_out"
)
