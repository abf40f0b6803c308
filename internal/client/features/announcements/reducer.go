package announcements

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
)

func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case FetchAnnouncements, RefreshAnnouncements:
		s.IsLoading = true
		s.ErrorMessage = ""
	case FetchSucceeded:
		s.Announcements = slices.Clone(in.Items)
		s.IsLoading = false
		s.ErrorMessage = ""
	case FetchFailed:
		s.IsLoading = false
		s.ErrorMessage = usecases.Message(in.Err)
	default:
		panic(fmt.Sprintf("announcements: unhandled intent %T", intent))
	}
	return s
}
