package schedule

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// スプレッドシート由来のゆるい値を正規化するヘルパ群。
// 入力が解釈できない場合はエラーではなく空文字を返し、判断は呼び出し側に任せる。

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reNonAlpha = regexp.MustCompile(`[^a-z]`)
	reClockHMS = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	reClockHM  = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// NormalizeHeader: 列名を比較可能なキーへ。"Room No." → "room_no"
func NormalizeHeader(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = reNonAlnum.ReplaceAllString(k, "_")
	return strings.Trim(k, "_")
}

// NormalizeLookup: 名前照合用キー。小文字化・trim・連続空白を1つに。
func NormalizeLookup(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	return reSpaces.ReplaceAllString(k, " ")
}

var dayAliases = map[string]string{
	"mon": "monday", "monday": "monday",
	"tue": "tuesday", "tues": "tuesday", "tuesday": "tuesday",
	"wed": "wednesday", "wednesday": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "thursday": "thursday",
	"fri": "friday", "friday": "friday",
	"sat": "saturday", "saturday": "saturday",
	"sun": "sunday", "sunday": "sunday",
}

var dayNumbers = map[int]string{
	0: "sunday", 1: "monday", 2: "tuesday", 3: "wednesday",
	4: "thursday", 5: "friday", 6: "saturday", 7: "sunday",
}

// NormalizeDay: 数値表記（0/7=日曜, 1=月曜, …）と別名表記の両方を受ける。
// 解釈できなければ空文字。
func NormalizeDay(value any) string {
	raw := strings.ToLower(strings.TrimSpace(anyToString(value)))
	if raw == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return dayNumbers[int(f)]
	}
	raw = reNonAlpha.ReplaceAllString(raw, "")
	return dayAliases[raw]
}

// clockLayouts: 時刻部分を取り出せる形式を順に試す。
// 入力は大文字化・空白除去済み（"8:30 am" → "8:30AM"）。
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05PM",
	"3:04PM",
	"3PM",
	"15",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-0215:04:05", // "2006-01-02 15:04:05" の空白除去後
	"2006/01/0215:04:05",
}

// NormalizeTime: [0,1) の数値は Excel の時刻シリアル値（1日に対する割合）として
// 秒に換算、それ以外は一般的な時刻表記としてパースして "HH:MM:SS" を返す。
// どちらでもなければ空文字。
func NormalizeTime(value any) string {
	raw := strings.TrimSpace(anyToString(value))
	if raw == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f >= 0 && f < 1 {
			secs := int(math.Round(f * 86400))
			secs %= 86400
			return secondsToClock(secs)
		}
	}
	return parseClock(raw)
}

// NormalizeTimeSimple: 単体作成・更新パス用の簡易版。
// "H:MM:SS" はそのまま、"H:MM" は ":00" を補い、それ以外は一般パースを試す。
// パースに失敗した場合は原文を返してDBの型制約に委ねる（インポート側とは違い
// 空文字に潰さない）。
func NormalizeTimeSimple(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	if reClockHMS.MatchString(v) {
		return v
	}
	if reClockHM.MatchString(v) {
		return v + ":00"
	}
	if t := parseClock(v); t != "" {
		return t
	}
	return v
}

func parseClock(raw string) string {
	compact := strings.ToUpper(reSpaces.ReplaceAllString(strings.TrimSpace(raw), ""))
	if compact == "" {
		return ""
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, compact); err == nil {
			return t.Format("15:04:05")
		}
	}
	return ""
}

func secondsToClock(secs int) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return itoa2(h) + ":" + itoa2(m) + ":" + itoa2(s)
}

func itoa2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// anyToString: JSON 由来のスカラー値（string / float64 / int / bool / nil）を
// 文字列に寄せる。float は 12.0 → "12" になるよう最短表記。
func anyToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
