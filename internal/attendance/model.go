package attendance

// DB行に対応（スキャン用）
type attendanceRow struct {
	AttendanceID   int64
	ScheduleID     int64
	AttendanceDate string // DATE → "YYYY-MM-DD"
	Status         string
}

// Service ↔ Store で使うモデル
type Attendance struct {
	AttendanceID   int64
	ScheduleID     int64
	AttendanceDate string
	Status         string
}

func (r attendanceRow) toModel() Attendance {
	return Attendance(r)
}

func (a Attendance) toDTO() AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:   a.AttendanceID,
		ScheduleID:     a.ScheduleID,
		AttendanceDate: a.AttendanceDate,
		Status:         a.Status,
	}
}
