package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// GET /class-schedules (一覧・JOIN済み)
	r.GET("/class-schedules", h.ListSchedules)
	// GET /class-schedules/export (CSVダウンロード)
	r.GET("/class-schedules/export", h.ExportSchedules)

	// POST /class-schedules
	// body に rows 配列があればスプレッドシート一括インポート、なければ単体作成
	r.POST("/class-schedules", h.CreateOrImport)

	// 更新・削除は PUT/DELETE と POST 別名の両方を受ける
	// （メソッドを出せないクライアント向け。旧システムのルーティングを踏襲）
	r.PUT("/class-schedules/:schedule_id", h.UpdateSchedule)
	r.POST("/class-schedules/:schedule_id/update", h.UpdateSchedule)
	r.DELETE("/class-schedules/:schedule_id", h.DeleteSchedule)
	r.POST("/class-schedules/:schedule_id/delete", h.DeleteSchedule)
}

// ---------- handlers ----------

func (h *Handler) ListSchedules(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateOrImport(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(KindMissingFields, "failed to read request body"))
		return
	}

	var env importEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Rows != nil {
		res, err := h.svc.Import(c.Request.Context(), env.Rows)
		if err != nil {
			c.JSON(toHTTPStatus(err), errorFromErr(err))
			return
		}
		c.JSON(http.StatusOK, res)
		return
	}

	var req CreateScheduleRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(KindMissingFields, "invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := parseScheduleID(c)
	if !ok {
		return
	}
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(KindMissingFields, "invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, ok := parseScheduleID(c)
	if !ok {
		return
	}
	res, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---------- helpers ----------

func parseScheduleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("schedule_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorBody(KindMissingFields, "schedule_id must be numeric"))
		return 0, false
	}
	return id, true
}

type errorDTO struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

func errorBody(kind Kind, msg string) errorDTO {
	return errorDTO{Error: kind, Message: msg}
}

func errorFromErr(err error) errorDTO {
	if api, ok := err.(*APIError); ok {
		return errorBody(api.Kind, api.Message)
	}
	return errorBody(KindInternal, err.Error())
}
