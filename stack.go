package errtrace

import (
	"fmt"
	"strings"

	"github.com/secureworks/errors"
)

// maxStackDepth bounds the number of frames kept per record.
const maxStackDepth = 32

// captureStack renders the goroutine's call stack, starting skip frames above
// the caller of captureStack, one "function\n\tfile:line" pair per frame.
func captureStack(skip int) string {
	frames := errors.CallStackAt(skip + 1)
	if len(frames) > maxStackDepth {
		frames = frames[:maxStackDepth]
	}

	lines := make([]string, 0, len(frames))
	for _, fr := range frames {
		fn, file, line := fr.Location()
		lines = append(lines, fmt.Sprintf("%s\n\t%s:%d", fn, file, line))
	}
	return strings.Join(lines, "\n")
}
