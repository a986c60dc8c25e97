package schedule

import (
	"context"
	"database/sql"

	pdb "SAMS-backend/internal/platform/db"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Snapshot: 部屋・科目提供・既存コマのキー集合を読み取り専用Txでまとめて取得。
// インポート1回につきDB読みはここだけ。失敗は呼び出し全体の中止（致命的）。
func (s *Store) Snapshot(ctx context.Context) (*Catalog, map[ScheduleKey]struct{}, error) {
	var (
		cat      *Catalog
		existing map[ScheduleKey]struct{}
	)
	err := pdb.ReadOnly(ctx, s.db, func(ctx context.Context, tx pdb.DBTX) error {
		rooms, err := loadRooms(ctx, tx)
		if err != nil {
			return ErrInternal("failed to load rooms: " + err.Error())
		}
		offerings, err := loadOfferings(ctx, tx)
		if err != nil {
			return ErrInternal("failed to load subject offerings: " + err.Error())
		}
		existing, err = loadExistingKeys(ctx, tx)
		if err != nil {
			return ErrInternal("failed to load existing schedules: " + err.Error())
		}
		cat = NewCatalog(rooms, offerings)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return cat, existing, nil
}

func loadRooms(ctx context.Context, q pdb.DBTX) ([]Room, error) {
	const query = `SELECT room_id, room_name FROM tbl_rooms`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.RoomID, &r.RoomName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadOfferings(ctx context.Context, q pdb.DBTX) ([]Offering, error) {
	const query = `
	SELECT so.offering_id, s.subject_code, s.subject_name, sec.section_name
	FROM tbl_subject_offerings so
	JOIN tbl_subject s ON so.subject_id = s.subject_id
	JOIN tbl_sections sec ON so.section_id = sec.section_id`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Offering
	for rows.Next() {
		var o Offering
		if err := rows.Scan(&o.OfferingID, &o.SubjectCode, &o.SubjectName, &o.SectionName); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func loadExistingKeys(ctx context.Context, q pdb.DBTX) (map[ScheduleKey]struct{}, error) {
	const query = `SELECT room_id, offering_id, day_of_week, start_time, end_time FROM tbl_class_schedules`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[ScheduleKey]struct{})
	for rows.Next() {
		var k ScheduleKey
		if err := rows.Scan(&k.RoomID, &k.OfferingID, &k.Day, &k.StartTime, &k.EndTime); err != nil {
			return nil, err
		}
		keys[k] = struct{}{}
	}
	return keys, rows.Err()
}

func (s *Store) Insert(ctx context.Context, key ScheduleKey) (int64, error) {
	const q = `
	INSERT INTO tbl_class_schedules (room_id, offering_id, day_of_week, start_time, end_time)
	VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, key.RoomID, key.OfferingID, key.Day, key.StartTime, key.EndTime)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, scheduleID int64) (ClassSchedule, error) {
	const q = `
	SELECT schedule_id, room_id, offering_id, day_of_week,
	       TIME_FORMAT(start_time, '%H:%i:%s'), TIME_FORMAT(end_time, '%H:%i:%s')
	FROM tbl_class_schedules WHERE schedule_id = ? LIMIT 1`
	var r scheduleRow
	err := s.db.QueryRowContext(ctx, q, scheduleID).
		Scan(&r.ScheduleID, &r.RoomID, &r.OfferingID, &r.DayOfWeek, &r.StartTime, &r.EndTime)
	if err == sql.ErrNoRows {
		return ClassSchedule{}, ErrNotFound("Schedule not found.")
	}
	if err != nil {
		return ClassSchedule{}, err
	}
	return r.toModel(), nil
}

// ExistsDuplicate: 複合キーが既にあるか。excludeID > 0 なら自分自身は除外（更新用）。
func (s *Store) ExistsDuplicate(ctx context.Context, key ScheduleKey, excludeID int64) (bool, error) {
	const q = `
	SELECT schedule_id FROM tbl_class_schedules
	WHERE room_id = ? AND offering_id = ? AND day_of_week = ?
	  AND start_time = ? AND end_time = ? AND schedule_id <> ?
	LIMIT 1`
	var id int64
	err := s.db.QueryRowContext(ctx, q,
		key.RoomID, key.OfferingID, key.Day, key.StartTime, key.EndTime, excludeID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Update(ctx context.Context, scheduleID int64, key ScheduleKey) error {
	const q = `
	UPDATE tbl_class_schedules
	SET room_id = ?, offering_id = ?, day_of_week = ?, start_time = ?, end_time = ?
	WHERE schedule_id = ?`
	_, err := s.db.ExecContext(ctx, q,
		key.RoomID, key.OfferingID, key.Day, key.StartTime, key.EndTime, scheduleID)
	return err
}

// Delete: 影響行数を返す。存在確認と削除の間に消えた場合は 0 行になる。
func (s *Store) Delete(ctx context.Context, scheduleID int64) (int64, error) {
	const q = `DELETE FROM tbl_class_schedules WHERE schedule_id = ?`
	res, err := s.db.ExecContext(ctx, q, scheduleID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) HasAttendance(ctx context.Context, scheduleID int64) (bool, error) {
	const q = `SELECT attendance_id FROM tbl_attendance_records WHERE schedule_id = ? LIMIT 1`
	return s.existsRow(ctx, q, scheduleID)
}

func (s *Store) HasSubstitutions(ctx context.Context, scheduleID int64) (bool, error) {
	const q = `SELECT substitution_id FROM tbl_substitutions WHERE schedule_id = ? LIMIT 1`
	return s.existsRow(ctx, q, scheduleID)
}

func (s *Store) existsRow(ctx context.Context, q string, args ...any) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) List(ctx context.Context) ([]ScheduleListItem, error) {
	const q = `
	SELECT cs.schedule_id, cs.room_id, cs.offering_id, cs.day_of_week,
	       TIME_FORMAT(cs.start_time, '%H:%i:%s'), TIME_FORMAT(cs.end_time, '%H:%i:%s'),
	       r.room_name, s.subject_code, s.subject_name, sec.section_name
	FROM tbl_class_schedules cs
	JOIN tbl_rooms r ON cs.room_id = r.room_id
	JOIN tbl_subject_offerings so ON cs.offering_id = so.offering_id
	JOIN tbl_subject s ON so.subject_id = s.subject_id
	JOIN tbl_sections sec ON so.section_id = sec.section_id
	ORDER BY cs.day_of_week, cs.start_time`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScheduleListItem
	for rows.Next() {
		var it ScheduleListItem
		if err := rows.Scan(&it.ScheduleID, &it.RoomID, &it.OfferingID, &it.DayOfWeek,
			&it.StartTime, &it.EndTime, &it.RoomName, &it.SubjectCode, &it.SubjectName, &it.SectionName); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
