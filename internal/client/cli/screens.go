package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mvikeeper/internal/client/features/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/home"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/login"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/security"
	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
)

func helpText(s screen) string {
	var cmds []string
	switch s {
	case screenLogin:
		cmds = []string{"account <name>", "login", "clear"}
	case screenHome:
		cmds = []string{"announcements", "direct", "logout", "clear"}
	case screenVerification:
		cmds = []string{"verify [password]", "cancel", "clear"}
	case screenAnnouncements:
		cmds = []string{"refresh", "back"}
	}
	cmds = append(cmds, "show", "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

func renderLogin(w io.Writer, s login.State, maxLength int) {
	fmt.Fprintln(w, "== 登入 ==")
	fmt.Fprintf(w, "account: %q (max %d)\n", s.Account, maxLength)
	switch {
	case s.IsLoading:
		fmt.Fprintln(w, "status: loading")
	case s.IsLoginEnabled:
		fmt.Fprintln(w, "status: ready, type 'login'")
	default:
		fmt.Fprintln(w, "status: enter an account")
	}
	if s.ErrorMessage != "" {
		fmt.Fprintf(w, "error: %s\n", s.ErrorMessage)
	}
}

func renderHome(w io.Writer, s home.State) {
	fmt.Fprintln(w, "== 首頁 ==")
	if s.User != nil {
		fmt.Fprintf(w, "signed in as %s\n", s.User.Account)
	} else {
		fmt.Fprintln(w, "no user")
	}
	if s.IsLoading {
		fmt.Fprintln(w, "status: loading")
	}
	if s.ErrorMessage != "" {
		fmt.Fprintf(w, "error: %s\n", s.ErrorMessage)
	}
}

func renderVerification(w io.Writer, d *navigation.Destination, attempts int) {
	fmt.Fprintln(w, "== 安全驗證 ==")
	if d != nil {
		fmt.Fprintf(w, "password required for %s\n", d.String())
	}
	fmt.Fprintf(w, "attempts: %d\n", attempts)
}

func renderSecurity(w io.Writer, s security.State) {
	if s.IsLoading {
		fmt.Fprintln(w, "status: verifying")
	}
	if s.ErrorMessage != "" {
		fmt.Fprintf(w, "error: %s\n", s.ErrorMessage)
	}
}

func renderAnnouncements(w io.Writer, s announcements.State) {
	fmt.Fprintln(w, "== 公告 ==")
	switch {
	case s.IsLoading && len(s.Announcements) == 0:
		fmt.Fprintln(w, "loading...")
		return
	case s.ErrorMessage != "":
		fmt.Fprintf(w, "error: %s\n", s.ErrorMessage)
	case len(s.Announcements) == 0:
		fmt.Fprintln(w, "no announcements")
	}
	for _, item := range s.Announcements {
		fmt.Fprintf(w, "#%d %s\n    %s\n", item.ID, item.Title, item.Body)
	}
}
