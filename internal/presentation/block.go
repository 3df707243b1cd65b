package presentation

import (
	"strings"

	"github.com/aretw0/rewind/pkg/domain"
)

// Block formats a titled snapshot description.
// The output is markdown: a heading followed by the description in a code
// fence, so both the console and markdown reporters keep its line breaks.
// The fence is one backtick longer than any backtick run in the description,
// so fences inside the content never close it.
func Block(title string, s domain.Snapshot) string {
	desc := s.Describe()
	fence := strings.Repeat("`", max(3, longestRun(desc, '`')+1))

	var b strings.Builder
	if title != "" {
		b.WriteString("## ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(fence)
	b.WriteString("\n")
	b.WriteString(desc)
	b.WriteString("\n")
	b.WriteString(fence)
	return b.String()
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}
