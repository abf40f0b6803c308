package home

import (
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
)

func logoutSuccessEffects() []effect.Effect {
	return []effect.Effect{
		effect.Toast{Message: "登出成功", Duration: 2 * time.Second},
		effect.Navigate{Route: effect.RouteLogin},
	}
}

func logoutErrorAlert(message string) effect.Effect {
	return effect.Alert{Title: "登出失敗", Message: message, Actions: effect.OK()}
}
