package schedule

import (
	"reflect"
	"testing"
)

func TestExtractDays(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"MWF", []string{"monday", "wednesday", "friday"}},
		{"MW", []string{"monday", "wednesday"}},
		{"TTh", []string{"tuesday", "thursday"}},
		{"Th", []string{"thursday"}},
		{"Tue and Thu", []string{"tuesday", "thursday"}},
		{"m w f", []string{"monday", "wednesday", "friday"}},
		{"sa/su", []string{"saturday", "sunday"}},
		// 発見順は別名表の順（月→日）で固定。テキスト中の出現順ではない
		{"Friday, Monday", []string{"monday", "friday"}},
		{"no days here", nil},
		{"", nil},
	}
	for _, c := range cases {
		if got := ExtractDays(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractDays(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractTimeRanges(t *testing.T) {
	cases := []struct {
		in   string
		want []TimeRange
	}{
		{"8:00-9:00", []TimeRange{{"08:00:00", "09:00:00"}}},
		{"8-9", []TimeRange{{"08:00:00", "09:00:00"}}},
		{"1pm to 2:30pm", []TimeRange{{"13:00:00", "14:30:00"}}},
		{"8-9, 10-11", []TimeRange{{"08:00:00", "09:00:00"}, {"10:00:00", "11:00:00"}}},
		{"8:00–9:00", []TimeRange{{"08:00:00", "09:00:00"}}}, // 全角ダッシュ
		{"no times", nil},
	}
	for _, c := range cases {
		if got := ExtractTimeRanges(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractTimeRanges(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseScheduleSingleRangeAllDays(t *testing.T) {
	got := ParseSchedule("MWF 8:00-9:00", "")
	want := []ScheduleEntry{
		{"monday", "08:00:00", "09:00:00"},
		{"wednesday", "08:00:00", "09:00:00"},
		{"friday", "08:00:00", "09:00:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseScheduleSegments(t *testing.T) {
	// セグメントごとに独立して抽出される（全体フォールバックに落ちない）
	got := ParseSchedule("Tue 1pm-2pm; Thu 3pm-4pm", "")
	want := []ScheduleEntry{
		{"tuesday", "13:00:00", "14:00:00"},
		{"thursday", "15:00:00", "16:00:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseSchedulePositionalPairing(t *testing.T) {
	// 曜日数 = 時間帯数 → 位置対応
	got := ParseSchedule("MW 8-9, 10-11", "")
	want := []ScheduleEntry{
		{"monday", "08:00:00", "09:00:00"},
		{"wednesday", "10:00:00", "11:00:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseScheduleMismatchFallsToFirstRange(t *testing.T) {
	// 複数だが数が合わない場合は全曜日を先頭の時間帯に寄せる（既存挙動を固定）
	got := ParseSchedule("MW 8-9, 10-11, 1-2", "")
	want := []ScheduleEntry{
		{"monday", "08:00:00", "09:00:00"},
		{"wednesday", "08:00:00", "09:00:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseScheduleFallbackDay(t *testing.T) {
	got := ParseSchedule("8:00-9:00", "monday")
	want := []ScheduleEntry{{"monday", "08:00:00", "09:00:00"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// 曜日がどこからも取れなければセグメントは黙って捨てる
	if got := ParseSchedule("8:00-9:00", ""); got != nil {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestParseScheduleEmpty(t *testing.T) {
	if got := ParseSchedule("", "monday"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
