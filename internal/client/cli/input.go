package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetPassword prints prompt on w and reads a line from the terminal
// without echo.
func GetPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
