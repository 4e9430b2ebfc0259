package convert

import "strings"

const fenceMarker = "```"

// StripFences removes a markdown code fence the model wrapped around its
// output despite being told not to. Only a leading marker line with a
// matching trailing marker line is removed, exactly the first and last
// lines; anything else is returned as-is. The result is trimmed of
// surrounding whitespace either way.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, fenceMarker) {
		return out
	}

	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return out
	}

	if strings.TrimSpace(lines[len(lines)-1]) != fenceMarker {
		return out
	}

	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
