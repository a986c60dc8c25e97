package schedule

import (
	"errors"
	"fmt"
)

// ===== Error model (attendance / platform と同型) =====

// Kind はレスポンスの "error" フィールドにそのまま出す機械可読コード。
type Kind string

const (
	KindMissingFields    Kind = "missing_fields"
	KindRoomNotFound     Kind = "room_not_found"
	KindOfferingNotFound Kind = "offering_not_found"
	KindDuplicate        Kind = "duplicate_schedule"
	KindNotFound         Kind = "schedule_not_found"
	KindInUse            Kind = "schedule_in_use"
	KindInsertFailed     Kind = "insert_failed"
	KindUpdateFailed     Kind = "update_failed"
	KindDeleteFailed     Kind = "delete_failed"
	KindInternal         Kind = "internal"
)

type APIError struct {
	Kind    Kind
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func ErrMissingFields(msg string) *APIError { return &APIError{Kind: KindMissingFields, Message: msg} }
func ErrDuplicate(msg string) *APIError     { return &APIError{Kind: KindDuplicate, Message: msg} }
func ErrNotFound(msg string) *APIError      { return &APIError{Kind: KindNotFound, Message: msg} }
func ErrInUse(msg string) *APIError         { return &APIError{Kind: KindInUse, Message: msg} }
func ErrInternal(msg string) *APIError      { return &APIError{Kind: KindInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Kind {
		case KindMissingFields:
			return 400
		case KindNotFound:
			return 404
		case KindDuplicate, KindInUse:
			return 409
		default:
			return 500
		}
	}
	return 500
}
