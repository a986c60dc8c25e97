package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// DBなしでバッチの流れを確認するための記録用inserter
type fakeInserter struct {
	keys    []ScheduleKey
	failKey *ScheduleKey
}

func (f *fakeInserter) insert(_ context.Context, key ScheduleKey) error {
	if f.failKey != nil && key == *f.failKey {
		return errors.New("boom")
	}
	f.keys = append(f.keys, key)
	return nil
}

func rawRows(rows ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, json.RawMessage(r))
	}
	return out
}

func TestImportEndToEnd(t *testing.T) {
	cat := testCatalog()
	ins := &fakeInserter{}
	im := newImporter(cat, nil, ins.insert)

	resp := im.run(context.Background(), rawRows(
		`{"Campus":"Room 101","Code":"MATH101","Section":"A","Schedule":"MWF 8-9"}`,
	))

	if resp.Inserted != 3 || resp.Skipped != 0 || resp.TotalRows != 1 || len(resp.Errors) != 0 {
		t.Fatalf("got %+v", resp)
	}
	want := ScheduleKey{RoomID: 1, OfferingID: 10, Day: "monday", StartTime: "08:00:00", EndTime: "09:00:00"}
	if ins.keys[0] != want {
		t.Errorf("first key = %+v, want %+v", ins.keys[0], want)
	}
}

func TestImportIdempotent(t *testing.T) {
	cat := testCatalog()
	rows := rawRows(
		`{"Room":"Room 101","Subject Code":"MATH101","Section":"A","Schedule":"MWF 8-9"}`,
		`{"Room":"Lab A","Subject Code":"ENG101","Section":"B","Day":"Tue","Start":"10:00","End":"11:00"}`,
	)

	ins := &fakeInserter{}
	first := newImporter(cat, nil, ins.insert).run(context.Background(), rows)
	if first.Inserted != 4 || first.Skipped != 0 || len(first.Errors) != 0 {
		t.Fatalf("first run: %+v", first)
	}

	// 1回目の結果を永続集合に見立てて同じ行をもう一度流す
	existing := make(map[ScheduleKey]struct{}, len(ins.keys))
	for _, k := range ins.keys {
		existing[k] = struct{}{}
	}
	second := newImporter(cat, existing, ins.insert).run(context.Background(), rows)
	if second.Inserted != 0 || second.Skipped != 4 || len(second.Errors) != 0 {
		t.Fatalf("second run: %+v", second)
	}
}

func TestImportCrossRowDedup(t *testing.T) {
	cat := testCatalog()
	rows := rawRows(
		`{"Room":"Room 101","Code":"MATH101","Section":"A","Day":"Mon","Start":"8:00","End":"9:00"}`,
		`{"Room":"Room 101","Code":"MATH101","Section":"A","Day":"Mon","Start":"8:00","End":"9:00"}`,
	)
	ins := &fakeInserter{}
	resp := newImporter(cat, nil, ins.insert).run(context.Background(), rows)
	if resp.Inserted != 1 || resp.Skipped != 1 || len(resp.Errors) != 0 {
		t.Fatalf("got %+v", resp)
	}
}

func TestImportRowNotObject(t *testing.T) {
	cat := testCatalog()
	resp := newImporter(cat, nil, (&fakeInserter{}).insert).run(context.Background(), rawRows(
		`"just a string"`,
		`[1,2,3]`,
	))
	if resp.TotalRows != 2 || len(resp.Errors) != 2 {
		t.Fatalf("got %+v", resp)
	}
	// 見かけの行番号はヘッダ行分ずれる（先頭データ行 = 2行目）
	if resp.Errors[0].Row != 2 || resp.Errors[0].Message != "Row is not a valid object" {
		t.Errorf("got %+v", resp.Errors[0])
	}
	if resp.Errors[1].Row != 3 {
		t.Errorf("got %+v", resp.Errors[1])
	}
}

func TestImportInsertFailureDoesNotAbort(t *testing.T) {
	cat := testCatalog()
	fail := ScheduleKey{RoomID: 1, OfferingID: 10, Day: "wednesday", StartTime: "08:00:00", EndTime: "09:00:00"}
	ins := &fakeInserter{failKey: &fail}

	resp := newImporter(cat, nil, ins.insert).run(context.Background(), rawRows(
		`{"Room":"Room 101","Code":"MATH101","Section":"A","Schedule":"MWF 8-9"}`,
	))

	if resp.Inserted != 2 || len(resp.Errors) != 1 {
		t.Fatalf("got %+v", resp)
	}
	if resp.Errors[0].Message != "Insert failed: boom" {
		t.Errorf("got %q", resp.Errors[0].Message)
	}
}

func TestImportRowErrorsAccumulate(t *testing.T) {
	cat := testCatalog()
	resp := newImporter(cat, nil, (&fakeInserter{}).insert).run(context.Background(), rawRows(
		`{"Room":"Room 999","Code":"MATH101","Section":"A","Schedule":"MWF 8-9"}`,
		`{"Room":"Room 101","Code":"MATH101","Section":"A","Schedule":"MWF 8-9"}`,
	))
	if resp.Inserted != 3 || len(resp.Errors) != 1 {
		t.Fatalf("got %+v", resp)
	}
	if resp.Errors[0].Row != 2 || resp.Errors[0].Message != "Room not found" {
		t.Errorf("got %+v", resp.Errors[0])
	}
}
