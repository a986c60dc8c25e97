package schedule

import "encoding/json"

// ===== Requests =====

// POST /class-schedules は body に rows があれば一括インポート、なければ単体作成。
// rows の要素はスプレッドシート1行分の「列名→値」のゆるいマップ。
type importEnvelope struct {
	Rows []json.RawMessage `json:"rows"`
}

type CreateScheduleRequest struct {
	RoomID     int64  `json:"room_id"`
	OfferingID int64  `json:"offering_id"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// ===== Responses =====

type ScheduleResponse struct {
	ScheduleID int64  `json:"schedule_id"`
	RoomID     int64  `json:"room_id"`
	OfferingID int64  `json:"offering_id"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type ScheduleListResponse struct {
	ScheduleID  int64  `json:"schedule_id"`
	RoomID      int64  `json:"room_id"`
	OfferingID  int64  `json:"offering_id"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	RoomName    string `json:"room_name"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	SectionName string `json:"section_name"`
}

// RowError の Row はスプレッドシート上の見かけの行番号（ヘッダ行1行を想定して ordinal+2）。
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResponse struct {
	Inserted  int        `json:"inserted"`
	Skipped   int        `json:"skipped"`
	TotalRows int        `json:"total_rows"`
	Errors    []RowError `json:"errors"`
}

type DeleteResponse struct {
	Deleted    bool  `json:"deleted"`
	ScheduleID int64 `json:"schedule_id"`
}
