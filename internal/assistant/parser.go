package assistant

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ParseInput splits a line into words the way a shell does, so a name with
// spaces can be given in quotes: add "John Smith" 0501234567.
// The verb is lower-cased, arguments are kept verbatim. A blank line yields
// an empty verb. Variables and backticks are not expanded.
func ParseInput(line string) (string, []string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnclosedQuote, err)
	}
	if len(words) == 0 {
		return "", nil, nil
	}
	return strings.ToLower(words[0]), words[1:], nil
}
