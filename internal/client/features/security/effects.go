package security

import (
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
)

func successEffects() []effect.Effect {
	return []effect.Effect{
		effect.Toast{Message: "驗證成功", Duration: 1500 * time.Millisecond},
		effect.Haptic{Style: effect.HapticLight},
	}
}

func errorAlert(message string) effect.Effect {
	return effect.Alert{Title: "驗證失敗", Message: message, Actions: effect.OK()}
}
