package schedule

// 参照カタログ（インポート中は読み取り専用）
type Room struct {
	RoomID   int64
	RoomName string
}

type Offering struct {
	OfferingID  int64
	SubjectCode string
	SubjectName string
	SectionName string
}

// ScheduleKey は1コマを一意に識別する複合キー。
// 文字列連結ではなく値型にして map キーとして使う（区切り文字の衝突を避ける）。
type ScheduleKey struct {
	RoomID     int64
	OfferingID int64
	Day        string // "monday".."sunday"
	StartTime  string // "HH:MM:SS"
	EndTime    string // "HH:MM:SS"
}

// DB行に対応（スキャン用）
type scheduleRow struct {
	ScheduleID int64
	RoomID     int64
	OfferingID int64
	DayOfWeek  string
	StartTime  string
	EndTime    string
}

// Service ↔ Store で使うモデル
type ClassSchedule struct {
	ScheduleID int64
	RoomID     int64
	OfferingID int64
	DayOfWeek  string
	StartTime  string
	EndTime    string
}

func (r scheduleRow) toModel() ClassSchedule {
	return ClassSchedule{
		ScheduleID: r.ScheduleID,
		RoomID:     r.RoomID,
		OfferingID: r.OfferingID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

func (s ClassSchedule) toDTO() ScheduleResponse {
	return ScheduleResponse{
		ScheduleID: s.ScheduleID,
		RoomID:     s.RoomID,
		OfferingID: s.OfferingID,
		DayOfWeek:  s.DayOfWeek,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

// 一覧表示用（部屋名・科目を JOIN した行）
type ScheduleListItem struct {
	ScheduleID  int64
	RoomID      int64
	OfferingID  int64
	DayOfWeek   string
	StartTime   string
	EndTime     string
	RoomName    string
	SubjectCode string
	SubjectName string
	SectionName string
}
