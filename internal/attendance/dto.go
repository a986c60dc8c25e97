package attendance

const (
	// 生成窓のデフォルト（当日から1週間分）
	DefaultWindowDays = 7

	DefaultPageLimit = 50
	MaxPageLimit     = 200
	DateLayout       = "2006-01-02"
	StatusPending    = "pending"
)

// POST /attendance/generate
// from/to とも省略可。省略時は「今日から1週間」。
type GenerateRequest struct {
	From *string `json:"from,omitempty"` // "YYYY-MM-DD"
	To   *string `json:"to,omitempty"`   // "YYYY-MM-DD"
}

type GenerateResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

type AttendanceResponse struct {
	AttendanceID   int64  `json:"attendance_id"`
	ScheduleID     int64  `json:"schedule_id"`
	AttendanceDate string `json:"attendance_date"` // YYYY-MM-DD
	Status         string `json:"status"`
}

type ListQuery struct {
	ScheduleID *int64
	On         *string
	From       *string
	To         *string
	Limit      int
	Offset     int
}

type ListResponse struct {
	Items []AttendanceResponse `json:"items"`
	Total int64                `json:"total"`
}
