package usecases

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultAccountMaxLength is the account limit used when none is configured.
const DefaultAccountMaxLength = 10

// AccountValidation is the outcome of ValidateAccount. When Valid is false,
// Account holds the truncated input and Message explains why.
type AccountValidation struct {
	Account string
	Valid   bool
	Message string
}

// ValidateAccount limits account length, counted in user-perceived
// characters (grapheme clusters), so a combined emoji counts once.
type ValidateAccount struct {
	maxLength int
}

func NewValidateAccount(maxLength int) *ValidateAccount {
	if maxLength <= 0 {
		maxLength = DefaultAccountMaxLength
	}
	return &ValidateAccount{maxLength: maxLength}
}

func (v *ValidateAccount) MaxLength() int {
	return v.maxLength
}

func (v *ValidateAccount) Validate(text string) AccountValidation {
	if uniseg.GraphemeClusterCount(text) <= v.maxLength {
		return AccountValidation{Account: text, Valid: true}
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(text)
	for n := 0; n < v.maxLength && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return AccountValidation{
		Account: b.String(),
		Message: fmt.Sprintf("帳號最多只能輸入%d個字", v.maxLength),
	}
}
