package schedule

import (
	"regexp"
	"strings"
)

// 自由記述の "schedule" 欄（例: "MWF 8:00-9:00 Rm 101; TTh 1pm-2:30pm"）から
// 曜日集合と時間帯を取り出す。

type TimeRange struct {
	StartTime string
	EndTime   string
}

type ScheduleEntry struct {
	Day       string
	StartTime string
	EndTime   string
}

// 曜日の検出順は別名表から固定（月→日）。発見順がそのまま並び順になり、
// 曜日数と時間帯数が一致したときの位置合わせが決定的になる。
var dayWordPatterns = []struct {
	day string
	re  *regexp.Regexp
}{
	{"monday", regexp.MustCompile(`\b(?:monday|mon)\b`)},
	{"tuesday", regexp.MustCompile(`\b(?:tuesday|tues|tue)\b`)},
	{"wednesday", regexp.MustCompile(`\b(?:wednesday|wed)\b`)},
	{"thursday", regexp.MustCompile(`\b(?:thursday|thurs|thur|thu)\b`)},
	{"friday", regexp.MustCompile(`\b(?:friday|fri)\b`)},
	{"saturday", regexp.MustCompile(`\b(?:saturday|sat)\b`)},
	{"sunday", regexp.MustCompile(`\b(?:sunday|sun)\b`)},
}

var (
	reCompoundDays = regexp.MustCompile(`\b(mwf|mw|tth|th|sa|su)\b`)
	reTimeRange    = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\s*(?:-|–|to)\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
	reSegmentSplit = regexp.MustCompile(`[;\n]+`)
)

var compoundDayMap = map[string][]string{
	"mwf": {"monday", "wednesday", "friday"},
	"mw":  {"monday", "wednesday"},
	"tth": {"tuesday", "thursday"},
	"th":  {"thursday"},
	"sa":  {"saturday"},
	"su":  {"sunday"},
}

var letterDayMap = map[string]string{
	"m": "monday", "t": "tuesday", "w": "wednesday",
	"th": "thursday", "f": "friday", "sa": "saturday", "su": "sunday",
}

// ExtractDays: 曜日名・略記・複合トークン（MWF, TTh）・単文字トークンを
// すべて拾って重複なしで返す。
func ExtractDays(text string) []string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return nil
	}

	var days []string
	seen := map[string]bool{}
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	for _, p := range dayWordPatterns {
		if p.re.MatchString(t) {
			add(p.day)
		}
	}
	for _, m := range reCompoundDays.FindAllString(t, -1) {
		for _, d := range compoundDayMap[m] {
			add(d)
		}
	}
	for _, tok := range strings.Fields(reNonAlpha.ReplaceAllString(t, " ")) {
		if d, ok := letterDayMap[tok]; ok {
			add(d)
		}
	}
	return days
}

// ExtractTimeRanges: "<time> (-|–|to) <time>" をすべて拾い、両端が時刻として
// 解釈できたものだけを出現順で返す。
func ExtractTimeRanges(text string) []TimeRange {
	var ranges []TimeRange
	for _, m := range reTimeRange.FindAllStringSubmatch(text, -1) {
		start := NormalizeTime(m[1])
		end := NormalizeTime(m[2])
		if start != "" && end != "" {
			ranges = append(ranges, TimeRange{StartTime: start, EndTime: end})
		}
	}
	return ranges
}

// ParseSchedule: テキストを ";" / 改行でセグメントに分け、セグメントごとに
// 曜日×時間帯を組み立てる。セグメント単体で曜日なり時間帯なりが取れなければ
// テキスト全体からの抽出結果、さらに fallbackDay の順で補う。
//
// 位置合わせ: 時間帯が1つなら全曜日に適用、曜日数と同数なら位置対応、
// それ以外（複数だが不一致）は全曜日を先頭の時間帯に寄せる。最後の分岐は
// 既存データがこの挙動を前提にしている可能性があるため変えないこと。
func ParseSchedule(text string, fallbackDay string) []ScheduleEntry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	globalDays := ExtractDays(text)
	globalRanges := ExtractTimeRanges(text)

	var entries []ScheduleEntry
	for _, segment := range reSegmentSplit.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		days := ExtractDays(segment)
		if len(days) == 0 {
			days = globalDays
		}
		if len(days) == 0 && fallbackDay != "" {
			days = []string{fallbackDay}
		}
		ranges := ExtractTimeRanges(segment)
		if len(ranges) == 0 {
			ranges = globalRanges
		}
		if len(days) == 0 || len(ranges) == 0 {
			continue
		}
		switch {
		case len(ranges) == 1:
			for _, d := range days {
				entries = append(entries, ScheduleEntry{Day: d, StartTime: ranges[0].StartTime, EndTime: ranges[0].EndTime})
			}
		case len(ranges) == len(days):
			for i := range days {
				entries = append(entries, ScheduleEntry{Day: days[i], StartTime: ranges[i].StartTime, EndTime: ranges[i].EndTime})
			}
		default:
			for _, d := range days {
				entries = append(entries, ScheduleEntry{Day: d, StartTime: ranges[0].StartTime, EndTime: ranges[0].EndTime})
			}
		}
	}
	return entries
}
