package login

import (
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
)

func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case AccountChanged:
		s.Account = in.Text
		s.IsLoginEnabled = in.Text != "" && !s.IsLoading
		s.ErrorMessage = ""
	case LoginClicked:
		s.IsLoading = true
		s.IsLoginEnabled = false
		s.ErrorMessage = ""
	case LoginSucceeded:
		u := in.User
		s.IsLoading = false
		s.IsLoginEnabled = true
		s.User = &u
		s.ErrorMessage = ""
	case LoginFailed:
		s.IsLoading = false
		s.IsLoginEnabled = true
		s.User = nil
		s.ErrorMessage = usecases.Message(in.Err)
	case ClearError:
		s.ErrorMessage = ""
	case AccountValidationFailed:
		s.IsLoading = false
		s.IsLoginEnabled = false
		s.ErrorMessage = in.Message
	default:
		panic(fmt.Sprintf("login: unhandled intent %T", intent))
	}
	return s
}
