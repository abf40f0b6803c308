package security

import (
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
)

func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case VerifyPassword:
		s.IsLoading = true
		s.IsVerificationSuccessful = false
		s.ErrorMessage = ""
	case VerificationSucceeded:
		s.IsLoading = false
		s.IsVerificationSuccessful = true
	case VerificationFailed:
		s.IsLoading = false
		s.IsVerificationSuccessful = false
		s.ErrorMessage = usecases.Message(in.Err)
	case ClearError:
		s.ErrorMessage = ""
	default:
		panic(fmt.Sprintf("security: unhandled intent %T", intent))
	}
	return s
}
