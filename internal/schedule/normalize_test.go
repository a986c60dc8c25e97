package schedule

import "testing"

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Room No.", "room_no"},
		{"  Subject Code ", "subject_code"},
		{"DAY-OF-WEEK", "day_of_week"},
		{"start__time", "start_time"},
		{"___", ""},
		{"", ""},
		{"Schedule (Time)", "schedule_time"},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.in); got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeLookup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Room   101  ", "room 101"},
		{"MATH101", "math101"},
		{"Lab\t A", "lab a"},
	}
	for _, c := range cases {
		if got := NormalizeLookup(c.in); got != c.want {
			t.Errorf("NormalizeLookup(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeDay(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"mon", "monday"},
		{"Monday", "monday"},
		{"tue", "tuesday"},
		{"tues", "tuesday"},
		{"WED", "wednesday"},
		{"thu", "thursday"},
		{"thur", "thursday"},
		{"thurs", "thursday"},
		{"fri.", "friday"}, // 記号は無視される
		{"sat", "saturday"},
		{"sun", "sunday"},
		{"0", "sunday"},
		{"7", "sunday"},
		{"1", "monday"},
		{"6", "saturday"},
		{float64(3), "wednesday"},
		{"funday", ""},
		{"8", ""},
		{"", ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := NormalizeDay(c.in); got != c.want {
			t.Errorf("NormalizeDay(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		// Excel の時刻シリアル値（1日に対する割合）
		{0.3541666666667, "08:30:00"},
		{float64(0), "00:00:00"},
		{"0.5", "12:00:00"},
		// 時刻表記
		{"8", "08:00:00"},
		{"8:30", "08:30:00"},
		{"08:30:15", "08:30:15"},
		{"1pm", "13:00:00"},
		{"1:30 pm", "13:30:00"},
		{"12:00 AM", "00:00:00"},
		// 解釈不能
		{"later", ""},
		{"", ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := NormalizeTime(c.in); got != c.want {
			t.Errorf("NormalizeTime(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTimeSimple(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9:00", "9:00:00"},
		{"09:00", "09:00:00"},
		{"9:00:30", "9:00:30"},
		{"1pm", "13:00:00"},
		{"", ""},
		// パース不能時は原文のまま返しDBに委ねる
		{"whenever", "whenever"},
	}
	for _, c := range cases {
		if got := NormalizeTimeSimple(c.in); got != c.want {
			t.Errorf("NormalizeTimeSimple(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
