package nls

import (
	"fmt"
	"regexp"
	"strconv"
)

// Pseudo localized messages are wrapped in fullwidth brackets so that
// hard-coded strings stand out next to externalized ones in a rendered UI.
const (
	pseudoOpen  = "［"
	pseudoClose = "］"
)

var (
	placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)
	vowelPattern       = regexp.MustCompile(`[aouei]`)
)

// format produces the final text for a message template. In pseudo mode the
// template is first rewritten into its visually flagged variant, then the
// numbered placeholders are substituted with args in a single left to right
// pass. Substituted content is not rescanned. A placeholder without a
// matching argument stays in the output verbatim.
func (l *Localization) format(message string, args []any) string {
	if l.cfg.IsPseudo() {
		message = pseudoOpen + vowelPattern.ReplaceAllString(message, "$0$0") + pseudoClose
	}

	if len(args) == 0 {
		return message
	}

	return placeholderPattern.ReplaceAllStringFunc(message, func(match string) string {
		index, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || index >= len(args) {
			return match
		}

		return fmt.Sprint(args[index])
	})
}
