// Package announcements serves the announcement list shown behind the
// security check.
package announcements

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

type Repository interface {
	// List returns all announcements ordered by id.
	List(ctx context.Context) ([]models.Announcement, error)
}

// Seed is the content of a fresh store; the Postgres migration inserts the
// same rows.
func Seed() []models.Announcement {
	return []models.Announcement{
		{ID: 1, UserID: 1, Title: "系統維護通知", Body: "本週六凌晨 2:00 至 4:00 進行系統維護，期間暫停服務。"},
		{ID: 2, UserID: 1, Title: "新功能上線", Body: "公告列表現在支援下拉重新整理。"},
		{ID: 3, UserID: 2, Title: "安全提醒", Body: "請勿將密碼提供給任何人，客服人員不會向您索取密碼。"},
		{ID: 4, UserID: 2, Title: "隱私權政策更新", Body: "我們已更新隱私權政策，請至設定頁面查看。"},
		{ID: 5, UserID: 3, Title: "節日活動", Body: "連假期間登入即可參加抽獎活動。"},
	}
}
