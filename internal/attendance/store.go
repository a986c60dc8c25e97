package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

// ScheduleDays: 曜日 → その曜日のコマID一覧。生成窓の日付との突き合わせ用。
func (s *Store) ScheduleDays(ctx context.Context) (map[string][]int64, error) {
	const q = `SELECT schedule_id, LOWER(day_of_week) FROM tbl_class_schedules`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]int64)
	for rows.Next() {
		var (
			id  int64
			day string
		)
		if err := rows.Scan(&id, &day); err != nil {
			return nil, err
		}
		out[day] = append(out[day], id)
	}
	return out, rows.Err()
}

// InsertMissing: (schedule_id, attendance_date) のUNIQUEに乗せた冪等INSERT。
// 返り値: 実際に作られたら true、既にあったら false。
func (s *Store) InsertMissing(ctx context.Context, scheduleID int64, date string) (bool, error) {
	const q = `
	INSERT IGNORE INTO tbl_attendance_records (schedule_id, attendance_date, status)
	VALUES (?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, scheduleID, date, StatusPending)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

// List: 条件に応じて動的WHERE + ORDER + LIMIT/OFFSET
func (s *Store) List(ctx context.Context, q ListQuery) ([]Attendance, int64, error) {
	var (
		buf    bytes.Buffer
		args   []any
		wheres []string
	)

	buf.WriteString(`
	SELECT attendance_id, schedule_id, DATE_FORMAT(attendance_date, '%Y-%m-%d') AS attendance_date, status
	FROM tbl_attendance_records
	`)
	if q.ScheduleID != nil {
		wheres = append(wheres, "schedule_id = ?")
		args = append(args, *q.ScheduleID)
	}
	if q.On != nil && *q.On != "" {
		wheres = append(wheres, "attendance_date = ?")
		args = append(args, *q.On)
	} else {
		if q.From != nil && *q.From != "" {
			wheres = append(wheres, "attendance_date >= ?")
			args = append(args, *q.From)
		}
		if q.To != nil && *q.To != "" {
			wheres = append(wheres, "attendance_date <= ?")
			args = append(args, *q.To)
		}
	}
	if len(wheres) > 0 {
		buf.WriteString(" WHERE " + strings.Join(wheres, " AND "))
	}

	buf.WriteString(" ORDER BY attendance_date DESC, attendance_id DESC")

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	buf.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", limit, q.Offset))

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Attendance
	for rows.Next() {
		var r attendanceRow
		if err := rows.Scan(&r.AttendanceID, &r.ScheduleID, &r.AttendanceDate, &r.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, r.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// COUNT（ORDER BY より前までを再構築）
	var cntBuf bytes.Buffer
	cntBuf.WriteString("SELECT COUNT(*) FROM tbl_attendance_records")
	if len(wheres) > 0 {
		cntBuf.WriteString(" WHERE " + strings.Join(wheres, " AND "))
	}
	var total int64
	if err := s.db.QueryRowContext(ctx, cntBuf.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
