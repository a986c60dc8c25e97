package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	mysql "github.com/go-sql-driver/mysql"
	ulid "github.com/oklog/ulid/v2"
)

// AttendanceTrigger: 変更成功後に呼ぶ外部コラボレータ（出席レコードの先行生成）。
// 実装側が非同期化とエラーの握り潰しを受け持ち、こちらの応答には一切影響しない。
type AttendanceTrigger interface {
	GenerateUpcoming()
}

type Service struct {
	db      *sql.DB
	store   *Store
	trigger AttendanceTrigger
}

func NewService(db *sql.DB, trigger AttendanceTrigger) *Service {
	return &Service{db: db, store: NewStore(db), trigger: trigger}
}

// ===== 一括インポート =====

// Import: スナップショット取得 → 行ループ → 集計。カタログが読めない場合だけ
// 呼び出し全体が失敗し、行単位の問題はレスポンスの errors に積まれる。
func (s *Service) Import(ctx context.Context, rows []json.RawMessage) (ImportResponse, error) {
	cat, existing, err := s.store.Snapshot(ctx)
	if err != nil {
		return ImportResponse{}, err
	}

	batch := ulid.Make().String()
	im := newImporter(cat, existing, func(ctx context.Context, key ScheduleKey) error {
		_, err := s.store.Insert(ctx, key)
		return err
	})
	resp := im.run(ctx, rows)

	log.Printf("[INFO] schedule import %s: rows=%d inserted=%d skipped=%d errors=%d",
		batch, resp.TotalRows, resp.Inserted, resp.Skipped, len(resp.Errors))

	s.fireTrigger()
	return resp, nil
}

// ===== 単体ライフサイクル =====

func (s *Service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	key, err := normalizeRequest(req)
	if err != nil {
		return ScheduleResponse{}, err
	}

	dup, err := s.store.ExistsDuplicate(ctx, key, 0)
	if err != nil {
		return ScheduleResponse{}, err
	}
	if dup {
		return ScheduleResponse{}, ErrDuplicate("Schedule already exists.")
	}

	id, err := s.store.Insert(ctx, key)
	if err != nil {
		// 事前チェック通過後に他の呼び出しが同じキーを入れた場合はここで弾かれる
		if isDuplicateKey(err) {
			return ScheduleResponse{}, ErrDuplicate("Schedule already exists.")
		}
		return ScheduleResponse{}, &APIError{Kind: KindInsertFailed, Message: err.Error()}
	}

	s.fireTrigger()
	return ClassSchedule{
		ScheduleID: id,
		RoomID:     key.RoomID,
		OfferingID: key.OfferingID,
		DayOfWeek:  key.Day,
		StartTime:  key.StartTime,
		EndTime:    key.EndTime,
	}.toDTO(), nil
}

func (s *Service) Update(ctx context.Context, scheduleID int64, req CreateScheduleRequest) (ScheduleResponse, error) {
	if _, err := s.store.GetByID(ctx, scheduleID); err != nil {
		return ScheduleResponse{}, err
	}

	key, err := normalizeRequest(req)
	if err != nil {
		return ScheduleResponse{}, err
	}

	dup, err := s.store.ExistsDuplicate(ctx, key, scheduleID)
	if err != nil {
		return ScheduleResponse{}, err
	}
	if dup {
		return ScheduleResponse{}, ErrDuplicate("Schedule already exists.")
	}

	if err := s.store.Update(ctx, scheduleID, key); err != nil {
		if isDuplicateKey(err) {
			return ScheduleResponse{}, ErrDuplicate("Schedule already exists.")
		}
		return ScheduleResponse{}, &APIError{Kind: KindUpdateFailed, Message: err.Error()}
	}

	s.fireTrigger()
	return ClassSchedule{
		ScheduleID: scheduleID,
		RoomID:     key.RoomID,
		OfferingID: key.OfferingID,
		DayOfWeek:  key.Day,
		StartTime:  key.StartTime,
		EndTime:    key.EndTime,
	}.toDTO(), nil
}

func (s *Service) Delete(ctx context.Context, scheduleID int64) (DeleteResponse, error) {
	if _, err := s.store.GetByID(ctx, scheduleID); err != nil {
		return DeleteResponse{}, err
	}

	if used, err := s.store.HasAttendance(ctx, scheduleID); err != nil {
		return DeleteResponse{}, err
	} else if used {
		return DeleteResponse{}, ErrInUse("Schedule has attendance records. Delete attendance records first.")
	}
	if used, err := s.store.HasSubstitutions(ctx, scheduleID); err != nil {
		return DeleteResponse{}, err
	} else if used {
		return DeleteResponse{}, ErrInUse("Schedule has substitutions. Delete substitutions first.")
	}

	affected, err := s.store.Delete(ctx, scheduleID)
	if err != nil {
		return DeleteResponse{}, &APIError{Kind: KindDeleteFailed, Message: err.Error()}
	}
	if affected == 0 {
		// 存在確認とDELETEの間に消えた場合は競合ではなく not found として扱う
		return DeleteResponse{}, ErrNotFound("Schedule not found.")
	}

	return DeleteResponse{Deleted: true, ScheduleID: scheduleID}, nil
}

func (s *Service) List(ctx context.Context) ([]ScheduleListResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ScheduleListResponse{
			ScheduleID:  it.ScheduleID,
			RoomID:      it.RoomID,
			OfferingID:  it.OfferingID,
			DayOfWeek:   it.DayOfWeek,
			StartTime:   it.StartTime,
			EndTime:     it.EndTime,
			RoomName:    it.RoomName,
			SubjectCode: it.SubjectCode,
			SubjectName: it.SubjectName,
			SectionName: it.SectionName,
		})
	}
	return out, nil
}

// ===== helpers =====

// normalizeRequest: 単体作成・更新は部分更新なし。5項目すべて必須で、
// 曜日・時刻はインポートと同じ正規化を通す。
func normalizeRequest(req CreateScheduleRequest) (ScheduleKey, error) {
	day := NormalizeDay(req.DayOfWeek)
	start := NormalizeTimeSimple(req.StartTime)
	end := NormalizeTimeSimple(req.EndTime)
	if req.RoomID == 0 || req.OfferingID == 0 || day == "" || start == "" || end == "" {
		return ScheduleKey{}, ErrMissingFields("room_id, offering_id, day_of_week, start_time, end_time are required.")
	}
	return ScheduleKey{
		RoomID:     req.RoomID,
		OfferingID: req.OfferingID,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (s *Service) fireTrigger() {
	if s.trigger != nil {
		s.trigger.GenerateUpcoming()
	}
}
