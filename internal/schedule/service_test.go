package schedule

import "testing"

func TestNormalizeRequest(t *testing.T) {
	req := CreateScheduleRequest{
		RoomID:     1,
		OfferingID: 10,
		DayOfWeek:  "Mon",
		StartTime:  "9:00",
		EndTime:    "10:30",
	}
	key, err := normalizeRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	want := ScheduleKey{RoomID: 1, OfferingID: 10, Day: "monday", StartTime: "9:00:00", EndTime: "10:30:00"}
	if key != want {
		t.Errorf("got %+v, want %+v", key, want)
	}
}

func TestNormalizeRequestMissingFields(t *testing.T) {
	cases := []struct {
		name string
		req  CreateScheduleRequest
	}{
		{"no room", CreateScheduleRequest{OfferingID: 10, DayOfWeek: "mon", StartTime: "9:00", EndTime: "10:00"}},
		{"no offering", CreateScheduleRequest{RoomID: 1, DayOfWeek: "mon", StartTime: "9:00", EndTime: "10:00"}},
		{"bad day", CreateScheduleRequest{RoomID: 1, OfferingID: 10, DayOfWeek: "someday", StartTime: "9:00", EndTime: "10:00"}},
		{"no start", CreateScheduleRequest{RoomID: 1, OfferingID: 10, DayOfWeek: "mon", EndTime: "10:00"}},
		{"no end", CreateScheduleRequest{RoomID: 1, OfferingID: 10, DayOfWeek: "mon", StartTime: "9:00"}},
	}
	for _, c := range cases {
		if _, err := normalizeRequest(c.req); err == nil {
			t.Errorf("%s: expected error", c.name)
		} else if api, ok := err.(*APIError); !ok || api.Kind != KindMissingFields {
			t.Errorf("%s: got %v, want missing_fields", c.name, err)
		}
	}
}
