package schedule

import (
	"encoding/csv"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// 時間割のCSVエクスポート。
// Excel でそのまま開けるよう BOM 付き UTF-8 で書き出す。

var exportHeader = []string{
	"schedule_id", "room_name", "subject_code", "subject_name",
	"section_name", "day_of_week", "start_time", "end_time",
}

func (h *Handler) ExportSchedules(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="class_schedules.csv"`)
	c.Status(http.StatusOK)

	if err := writeScheduleCSV(c.Writer, items); err != nil {
		// ヘッダ送信後なのでステータスは変えられない。ログだけ残して打ち切り。
		log.Printf("[WARN] csv export aborted: %v", err)
	}
}

func writeScheduleCSV(dst io.Writer, items []ScheduleListResponse) error {
	enc := unicode.UTF8BOM.NewEncoder()
	w := csv.NewWriter(transform.NewWriter(dst, enc))

	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, it := range items {
		record := []string{
			strconv.FormatInt(it.ScheduleID, 10),
			it.RoomName,
			it.SubjectCode,
			it.SubjectName,
			it.SectionName,
			it.DayOfWeek,
			it.StartTime,
			it.EndTime,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
