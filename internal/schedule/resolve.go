package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// 1行分の解決ロジック。カタログと行だけを引数に取る純関数群で、
// 失敗は panic ではなく「どの種別で落ちたか」を返して行ループ側が集計する。

// rowFields: 正規化済みヘッダ → 生値。
type rowFields map[string]any

func newRowFields(raw map[string]any) rowFields {
	f := make(rowFields, len(raw))
	for k, v := range raw {
		if nk := NormalizeHeader(k); nk != "" {
			f[nk] = v
		}
	}
	return f
}

// value: 候補キーを順に引き、最初の非空値を返す。
func (f rowFields) value(keys ...string) any {
	for _, key := range keys {
		if v, ok := f[NormalizeHeader(key)]; ok {
			if s := anyToString(v); s != "" {
				return v
			}
		}
	}
	return nil
}

func (f rowFields) str(keys ...string) string {
	return anyToString(f.value(keys...))
}

// resolvedRow: 解決済みの1行。schedule 欄の書き方次第で複数コマに展開される。
type resolvedRow struct {
	Room     Room
	Offering Offering
	Entries  []ScheduleEntry
}

// resolveRoom: 優先順は (a) 数値 room_id → (b) 部屋名系の列 → (c) campus 列 →
// (d) schedule 欄への部分一致。最初に当たった戦略が勝つ。
func resolveRoom(cat *Catalog, f rowFields, scheduleText string) (Room, bool) {
	if v := f.str("room_id", "roomid"); v != "" {
		if id, ok := parseIntValue(v); ok {
			if room, found := cat.roomByID[id]; found {
				return room, true
			}
		} else if room, found := cat.roomByName[NormalizeLookup(v)]; found {
			return room, true
		}
	}
	for _, v := range []string{
		f.str("room_name", "room", "room_no", "room_number"),
		f.str("campus"),
	} {
		if v == "" {
			continue
		}
		if room, found := cat.roomByName[NormalizeLookup(v)]; found {
			return room, true
		}
		if id, ok := parseIntValue(v); ok {
			if room, found := cat.roomByID[id]; found {
				return room, true
			}
		}
	}
	if scheduleText != "" {
		if room, found := cat.FindRoomInText(scheduleText); found {
			return room, true
		}
	}
	return Room{}, false
}

var reComboSplit = regexp.MustCompile(`\s*[-/|]+\s*`)

// resolveOffering: (a) 数値 offering_id → (b) コード×セクション → (c) 名称×セクション。
// セクション列がなければ "subject/section" 形式の複合列を分割して補う。
func resolveOffering(cat *Catalog, f rowFields) (Offering, bool) {
	if v := f.str("offering_id", "offeringid", "offering"); v != "" {
		if id, ok := parseIntValue(v); ok {
			if o, found := cat.offeringByID[id]; found {
				return o, true
			}
		}
	}

	subjectCode := f.str("subject_code", "subjectcode", "subject", "code")
	subjectName := f.str("subject_name", "subjectname")
	sectionName := f.str("section_name", "section", "sectionname")
	if sectionName == "" {
		if combo := f.str("subject_section", "subject/section", "subject_offering"); combo != "" {
			parts := reComboSplit.Split(strings.TrimSpace(combo), -1)
			if len(parts) >= 2 {
				if subjectCode == "" {
					subjectCode = parts[0]
				}
				sectionName = parts[1]
			}
		}
	}

	if subjectCode != "" && sectionName != "" {
		key := offeringKey{NormalizeLookup(subjectCode), NormalizeLookup(sectionName)}
		if o, found := cat.offeringByCodeSection[key]; found {
			return o, true
		}
	}
	if subjectName != "" && sectionName != "" {
		key := offeringKey{NormalizeLookup(subjectName), NormalizeLookup(sectionName)}
		if o, found := cat.offeringByNameSection[key]; found {
			return o, true
		}
	}
	return Offering{}, false
}

// resolveEntries: schedule 欄があれば自由記述パース（明示の曜日列を fallback に）、
// 取れなければ明示の day/start/end 列に落ちる。
func resolveEntries(f rowFields, scheduleText string) []ScheduleEntry {
	explicitDay := NormalizeDay(f.value("day_of_week", "day", "weekday", "dow"))

	if scheduleText != "" {
		if entries := ParseSchedule(scheduleText, explicitDay); len(entries) > 0 {
			return entries
		}
	}

	start := NormalizeTime(f.value("start_time", "start", "time_start", "from", "time_in"))
	end := NormalizeTime(f.value("end_time", "end", "time_end", "to", "time_out"))
	if explicitDay == "" || start == "" || end == "" {
		return nil
	}
	return []ScheduleEntry{{Day: explicitDay, StartTime: start, EndTime: end}}
}

// resolveRow: 部屋 → 科目提供 → 曜日/時刻の順に解決し、最初に尽きた段階の
// エラーメッセージを返す。
func resolveRow(cat *Catalog, raw map[string]any) (resolvedRow, string) {
	f := newRowFields(raw)
	scheduleText := f.str("schedule", "class_schedule", "schedule_time", "time")

	room, ok := resolveRoom(cat, f, scheduleText)
	if !ok {
		return resolvedRow{}, "Room not found"
	}
	offering, ok := resolveOffering(cat, f)
	if !ok {
		return resolvedRow{}, "Subject offering not found"
	}
	entries := resolveEntries(f, scheduleText)
	if len(entries) == 0 {
		return resolvedRow{}, "Schedule/day/time not found"
	}
	return resolvedRow{Room: room, Offering: offering, Entries: entries}, ""
}

// parseIntValue: "12", "12.0" のような数値表記を int64 に。
func parseIntValue(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(fv), true
	}
	return 0, false
}
