package login

import (
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
)

func successEffects() []effect.Effect {
	return []effect.Effect{
		effect.Toast{Message: "登入成功", Duration: 2 * time.Second},
		effect.Haptic{Style: effect.HapticLight},
		effect.Navigate{Route: effect.RouteHome},
	}
}

func errorAlert(message string) effect.Effect {
	return effect.Alert{Title: "登入失敗", Message: message, Actions: effect.OK()}
}

func validationToast(message string) effect.Effect {
	return effect.Toast{Message: message, Duration: 2 * time.Second}
}
