package announcements

import "github.com/dmitrijs2005/mvikeeper/internal/effect"

func fetchErrorAlert(message string) effect.Effect {
	return effect.Alert{
		Title:   "載入失敗",
		Message: message,
		Actions: []effect.AlertAction{
			{Title: "重試", Style: effect.ActionDefault},
			{Title: "取消", Style: effect.ActionCancel},
		},
	}
}

func refreshComplete() effect.Effect {
	return effect.Haptic{Style: effect.HapticMedium}
}
