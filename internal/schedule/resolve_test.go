package schedule

import "testing"

func testCatalog() *Catalog {
	rooms := []Room{
		{RoomID: 1, RoomName: "Room 101"},
		{RoomID: 2, RoomName: "Lab A"},
	}
	offerings := []Offering{
		{OfferingID: 10, SubjectCode: "MATH101", SubjectName: "Calculus", SectionName: "A"},
		{OfferingID: 20, SubjectCode: "ENG101", SubjectName: "English", SectionName: "B"},
	}
	return NewCatalog(rooms, offerings)
}

func TestResolveRoomByID(t *testing.T) {
	cat := testCatalog()
	f := newRowFields(map[string]any{"Room ID": float64(2)})
	room, ok := resolveRoom(cat, f, "")
	if !ok || room.RoomID != 2 {
		t.Fatalf("got %+v ok=%v, want room 2", room, ok)
	}
}

func TestResolveRoomIDWinsOverName(t *testing.T) {
	cat := testCatalog()
	// room_id と部屋名が別の部屋を指す場合は数値IDが勝つ
	f := newRowFields(map[string]any{
		"room_id":   "2",
		"room_name": "Room 101",
	})
	room, ok := resolveRoom(cat, f, "")
	if !ok || room.RoomID != 2 {
		t.Fatalf("got %+v ok=%v, want room 2", room, ok)
	}
}

func TestResolveRoomByCampus(t *testing.T) {
	cat := testCatalog()
	f := newRowFields(map[string]any{"Campus": "  room   101 "})
	room, ok := resolveRoom(cat, f, "")
	if !ok || room.RoomID != 1 {
		t.Fatalf("got %+v ok=%v, want room 1", room, ok)
	}
}

func TestResolveRoomFromScheduleText(t *testing.T) {
	cat := testCatalog()
	f := newRowFields(map[string]any{})
	room, ok := resolveRoom(cat, f, "MWF 8-9 Lab A")
	if !ok || room.RoomID != 2 {
		t.Fatalf("got %+v ok=%v, want room 2", room, ok)
	}

	if _, ok := resolveRoom(cat, f, "MWF 8-9"); ok {
		t.Fatal("expected no room")
	}
}

func TestResolveOffering(t *testing.T) {
	cat := testCatalog()
	cases := []struct {
		name string
		row  map[string]any
		want int64
	}{
		{"by id", map[string]any{"offering_id": float64(20)}, 20},
		{"by code+section", map[string]any{"Subject Code": "math101", "Section": "a"}, 10},
		{"by name+section", map[string]any{"Subject Name": "English", "Section": "B"}, 20},
		{"by combo column", map[string]any{"Subject/Section": "MATH101-A"}, 10},
		{"combo with slash", map[string]any{"subject_offering": "ENG101 / B"}, 20},
	}
	for _, c := range cases {
		f := newRowFields(c.row)
		o, ok := resolveOffering(cat, f)
		if !ok || o.OfferingID != c.want {
			t.Errorf("%s: got %+v ok=%v, want offering %d", c.name, o, ok, c.want)
		}
	}

	if _, ok := resolveOffering(cat, newRowFields(map[string]any{"Subject Code": "PHYS1"})); ok {
		t.Error("expected no offering")
	}
}

func TestResolveEntriesExplicitColumns(t *testing.T) {
	// schedule 欄なし → 明示の day/start/end 列（Excelシリアル値含む）
	f := newRowFields(map[string]any{
		"Day":        "Mon",
		"Time Start": 0.3333333333333,
		"Time End":   "9:30",
	})
	entries := resolveEntries(f, "")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	want := ScheduleEntry{Day: "monday", StartTime: "08:00:00", EndTime: "09:30:00"}
	if entries[0] != want {
		t.Errorf("got %+v, want %+v", entries[0], want)
	}
}

func TestResolveEntriesScheduleTextWins(t *testing.T) {
	f := newRowFields(map[string]any{
		"Schedule": "TTh 1pm-2pm",
		"Day":      "Mon",
	})
	entries := resolveEntries(f, "TTh 1pm-2pm")
	if len(entries) != 2 || entries[0].Day != "tuesday" || entries[1].Day != "thursday" {
		t.Fatalf("got %+v", entries)
	}
}

func TestResolveRowErrorOrder(t *testing.T) {
	cat := testCatalog()
	cases := []struct {
		name string
		row  map[string]any
		want string
	}{
		{"no room", map[string]any{"Subject Code": "MATH101", "Section": "A"}, "Room not found"},
		{"no offering", map[string]any{"Room": "Room 101"}, "Subject offering not found"},
		{"no schedule", map[string]any{"Room": "Room 101", "Subject Code": "MATH101", "Section": "A"}, "Schedule/day/time not found"},
	}
	for _, c := range cases {
		if _, msg := resolveRow(cat, c.row); msg != c.want {
			t.Errorf("%s: got %q, want %q", c.name, msg, c.want)
		}
	}
}
