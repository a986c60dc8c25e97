package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /attendance/generate (窓指定は任意)
	r.POST("/attendance/generate", h.Generate)
	// GET /attendance (一覧・検索)
	r.GET("/attendance", h.List)
}

// ---------- handlers ----------

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	// body なしの呼び出し（デフォルト窓）も許す
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrInvalid("invalid json"))
			return
		}
	}

	from, err := parseDatePtr(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("from must be YYYY-MM-DD"))
		return
	}
	to, err := parseDatePtr(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("to must be YYYY-MM-DD"))
		return
	}

	res, err := h.svc.GenerateWindow(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(toHTTPStatus(err), errBody(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) List(c *gin.Context) {
	q := ListQuery{
		Limit:  parseIntDefault(c.Query("limit"), DefaultPageLimit),
		Offset: parseIntDefault(c.Query("offset"), 0),
	}
	if v := c.Query("schedule_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.ScheduleID = &id
		}
	}
	if v := c.Query("on"); v != "" {
		q.On = &v
	}
	if v := c.Query("from"); v != "" {
		q.From = &v
	}
	if v := c.Query("to"); v != "" {
		q.To = &v
	}

	res, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(toHTTPStatus(err), errBody(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---------- helpers ----------

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, *s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIntDefault(s string, d int) int {
	if s == "" {
		return d
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func errBody(err error) *APIError {
	if api, ok := err.(*APIError); ok {
		return api
	}
	return &APIError{Kind: KindInternal, Message: err.Error()}
}
