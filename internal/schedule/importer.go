package schedule

import (
	"context"
	"encoding/json"
)

// insertFunc: 1コマ分のINSERT。importer 本体を DB なしでテストできるよう注入する。
type insertFunc func(ctx context.Context, key ScheduleKey) error

// importer は1回のインポート呼び出し分だけ生きる制御オブジェクト。
// existing は呼び出し開始時に読んだ永続キー集合の自分用コピーで、
// INSERT 成功のたびに書き足して同一バッチ内の後続行からも見えるようにする。
type importer struct {
	cat      *Catalog
	existing map[ScheduleKey]struct{}
	insert   insertFunc
	resp     ImportResponse
}

func newImporter(cat *Catalog, existing map[ScheduleKey]struct{}, insert insertFunc) *importer {
	if existing == nil {
		existing = make(map[ScheduleKey]struct{})
	}
	return &importer{cat: cat, existing: existing, insert: insert}
}

func (im *importer) addError(rowNumber int, msg string) {
	im.resp.Errors = append(im.resp.Errors, RowError{Row: rowNumber, Message: msg})
}

// run: rows を順に処理して集計を返す。行エラーはバッチを止めない。
func (im *importer) run(ctx context.Context, rows []json.RawMessage) ImportResponse {
	im.resp.TotalRows = len(rows)
	if im.resp.Errors == nil {
		im.resp.Errors = []RowError{}
	}

	for idx, raw := range rows {
		// ヘッダ行1行を想定した見かけの行番号
		rowNumber := idx + 2

		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil || row == nil {
			im.addError(rowNumber, "Row is not a valid object")
			continue
		}

		resolved, errMsg := resolveRow(im.cat, row)
		if errMsg != "" {
			im.addError(rowNumber, errMsg)
			continue
		}

		im.commitEntries(ctx, rowNumber, resolved)
	}
	return im.resp
}

func (im *importer) commitEntries(ctx context.Context, rowNumber int, r resolvedRow) {
	// 行内の重複（同じ記述が2回出てくる等）は黙ってスキップ
	rowSeen := make(map[ScheduleKey]struct{}, len(r.Entries))

	for _, e := range r.Entries {
		if e.Day == "" || e.StartTime == "" || e.EndTime == "" {
			im.addError(rowNumber, "Invalid schedule time in row")
			continue
		}
		key := ScheduleKey{
			RoomID:     r.Room.RoomID,
			OfferingID: r.Offering.OfferingID,
			Day:        e.Day,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
		}
		if _, dup := rowSeen[key]; dup {
			im.resp.Skipped++
			continue
		}
		rowSeen[key] = struct{}{}
		if _, dup := im.existing[key]; dup {
			im.resp.Skipped++
			continue
		}

		if err := im.insert(ctx, key); err != nil {
			im.addError(rowNumber, "Insert failed: "+err.Error())
			continue
		}
		im.existing[key] = struct{}{}
		im.resp.Inserted++
	}
}
