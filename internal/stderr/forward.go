package stderr

import (
	"bufio"
	"io"
	"strings"
)

// forward passes every non-blank line of r to sink until r is exhausted.
func forward(r io.Reader, sink func(string)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && sink != nil {
			sink(line)
		}
	}
}
