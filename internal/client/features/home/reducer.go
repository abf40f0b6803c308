package home

import (
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
)

func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case ViewAppeared:
		s.IsLoading = false
		s.ErrorMessage = ""
	case UserLoaded:
		s.User = nil
		if in.User != nil {
			u := *in.User
			s.User = &u
		}
		s.IsLoading = false
		s.ErrorMessage = ""
	case LogoutClicked:
		s.IsLoading = true
	case LogoutSucceeded:
		s.User = nil
		s.IsLoading = false
	case LogoutFailed:
		s.IsLoading = false
		s.ErrorMessage = usecases.Message(in.Err)
	case OpenAnnouncements:
	case ClearError:
		s.ErrorMessage = ""
	default:
		panic(fmt.Sprintf("home: unhandled intent %T", intent))
	}
	return s
}
