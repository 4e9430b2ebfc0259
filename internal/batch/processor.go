package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadBatchFile reads source file paths from a file and returns them.
// One path per line; blank lines and lines starting with '#' are
// skipped.
func ReadBatchFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("batch file contains no paths: %s", filename)
	}

	return paths, nil
}
