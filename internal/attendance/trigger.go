package attendance

import (
	"context"
	"log"
	"time"
)

// AsyncTrigger: スケジュール変更後の fire-and-forget 生成。
// schedule.AttendanceTrigger を満たす。失敗は自分のログに残すだけで、
// 呼び出し元のレスポンスには決して伝播しない。
type AsyncTrigger struct{ svc *Service }

func NewAsyncTrigger(svc *Service) *AsyncTrigger { return &AsyncTrigger{svc: svc} }

func (t *AsyncTrigger) GenerateUpcoming() {
	go func() {
		// 元リクエストの context は応答後に死ぬので独立した期限を持つ
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := t.svc.GenerateWindow(ctx, nil, nil)
		if err != nil {
			log.Printf("[WARN] attendance generation failed: %v", err)
			return
		}
		log.Printf("[INFO] attendance generated %s..%s: created=%d skipped=%d",
			res.From, res.To, res.Created, res.Skipped)
	}()
}
