package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	status() string
	help() string
	pump(ctx context.Context)

	SetAccount(ctx context.Context, text string) error
	Login(ctx context.Context) error
	ClearError(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenAnnouncements(ctx context.Context) error
	OpenAnnouncementsDirect(ctx context.Context) error
	Verify(ctx context.Context, password string) error
	Cancel(ctx context.Context) error
	Refresh(ctx context.Context) error
	Back(ctx context.Context) error
	Show(ctx context.Context) error
}

// execLine runs one command line and reports whether the REPL should stop.
//
//	login screen:          account <name>, login, clear
//	home:                  announcements (ann), direct, logout, clear
//	verification:          verify [password], cancel, clear
//	announcements:         refresh, back
//	everywhere:            show, help, exit | quit
//
// Command errors are printed and do not stop the loop.
func execLine(ctx context.Context, a execIface, line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	if cmd == "" {
		return false
	}

	var err error
	switch cmd {
	case "help", "?":
		printlnFn(a.help())
	case "show", "status":
		err = a.Show(ctx)
	case "account":
		err = a.SetAccount(ctx, rest)
	case "login":
		err = a.Login(ctx)
	case "clear":
		err = a.ClearError(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "announcements", "ann":
		err = a.OpenAnnouncements(ctx)
	case "direct":
		err = a.OpenAnnouncementsDirect(ctx)
	case "verify":
		err = a.Verify(ctx, rest)
	case "cancel":
		err = a.Cancel(ctx)
	case "refresh":
		err = a.Refresh(ctx)
	case "back":
		err = a.Back(ctx)
	case "exit", "quit":
		printlnFn("Bye!")
		return true
	default:
		printlnFn("Unknown command:", cmd)
	}

	if err != nil {
		printlnFn("error:", err)
	}
	return false
}

// runREPL reads commands from in until EOF, "exit" or ctx cancellation.
// Between commands it reacts to ready by letting a handle queued events.
//
// The reader goroutine scans the next line only after the previous command
// has finished, so a command may read the terminal itself (password prompt).
func runREPL(ctx context.Context, a execIface, in io.Reader, ready <-chan struct{}) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	next := make(chan struct{})

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for {
			select {
			case <-next:
			case <-ctx.Done():
				return
			}
			if !sc.Scan() {
				return
			}
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	a.pump(ctx)
	prompt := func() {
		printlnFn(fmt.Sprintf("mk> %s > ", a.status()))
		select {
		case next <- struct{}{}:
		case <-ctx.Done():
		}
	}
	prompt()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ready:
			a.pump(ctx)

		case line, ok := <-lines:
			if !ok {
				return
			}
			quit := execLine(ctx, a, line)
			a.pump(ctx)
			if quit {
				return
			}
			prompt()
		}
	}
}
