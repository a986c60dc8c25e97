package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ===== Error model (schedule と同型) =====
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindInternal        Kind = "internal"
)

type APIError struct {
	Kind    Kind   `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string     { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }
func ErrInvalid(msg string) *APIError { return &APIError{Kind: KindInvalidArgument, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) && api.Kind == KindInvalidArgument {
		return 400
	}
	return 500
}

// ===== Service =====

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, store: NewStore(db)}
}

// GenerateWindow: 窓内の各日付について、曜日が一致するコマの出席レコードを
// なければ作る。from/to が nil のときは「今日から1週間」。
// 何度呼んでも同じ窓では作成済み分がスキップされるだけで安全。
func (s *Service) GenerateWindow(ctx context.Context, from, to *time.Time) (GenerateResponse, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	if from != nil {
		start = from.UTC().Truncate(24 * time.Hour)
	}
	end := start.AddDate(0, 0, DefaultWindowDays-1)
	if to != nil {
		end = to.UTC().Truncate(24 * time.Hour)
	}
	if end.Before(start) {
		return GenerateResponse{}, ErrInvalid("to must be >= from")
	}

	byDay, err := s.store.ScheduleDays(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}

	res := GenerateResponse{
		From: start.Format(DateLayout),
		To:   end.Format(DateLayout),
	}
	for _, d := range windowDates(start, end) {
		day := strings.ToLower(d.Weekday().String())
		for _, scheduleID := range byDay[day] {
			created, err := s.store.InsertMissing(ctx, scheduleID, d.Format(DateLayout))
			if err != nil {
				return GenerateResponse{}, err
			}
			if created {
				res.Created++
			} else {
				res.Skipped++
			}
		}
	}
	return res, nil
}

// GET /attendance
func (s *Service) List(ctx context.Context, q ListQuery) (ListResponse, error) {
	rows, total, err := s.store.List(ctx, q)
	if err != nil {
		return ListResponse{}, err
	}
	out := ListResponse{Items: make([]AttendanceResponse, 0, len(rows)), Total: total}
	for _, r := range rows {
		out.Items = append(out.Items, r.toDTO())
	}
	return out, nil
}

// windowDates: start から end まで（両端含む）の日付列。
func windowDates(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
