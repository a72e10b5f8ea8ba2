package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxNameAttempts bounds the suffix probing of UniqueFolderName
const MaxNameAttempts = 100

// ErrNameExhausted means no free "Name (N)" was found within MaxNameAttempts
var ErrNameExhausted = errors.New("unique folder name attempts exhausted")

var numberedName = regexp.MustCompile(`^(.*) \((\d+)\)$`)

// UniqueFolderName returns desired if no sibling uses it, otherwise the first
// free "Base (N)" after the number already carried by desired.
// e.g. siblings {"New Folder", "New Folder (1)"} + "New Folder" -> "New Folder (2)"
func UniqueFolderName(desired string, siblings []*Folder) (string, error) {
	taken := make(map[string]bool, len(siblings))
	for _, s := range siblings {
		taken[s.Name] = true
	}
	if !taken[desired] {
		return desired, nil
	}

	base, n := splitNumberedName(desired)
	for attempt := 1; attempt <= MaxNameAttempts; attempt++ {
		candidate := fmt.Sprintf("%s (%d)", base, n+attempt)
		if !taken[candidate] {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q after %d attempts", ErrNameExhausted, desired, MaxNameAttempts)
}

// splitNumberedName splits "Base (N)" into ("Base", N); other names yield (name, 0)
func splitNumberedName(name string) (string, int) {
	m := numberedName.FindStringSubmatch(name)
	if m == nil {
		return name, 0
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return name, 0
	}
	return m[1], n
}

// HumanizeName turns a method identifier into a display name:
// "OpenSceneView" -> "Open Scene View", "m_buildAll" -> "Build All",
// "ExportHTMLReport" -> "Export HTML Report".
func HumanizeName(ident string) string {
	runes := []rune(ident)
	switch {
	case strings.HasPrefix(ident, "m_"):
		runes = runes[2:]
	case len(runes) > 1 && runes[0] == 'k' && unicode.IsUpper(runes[1]):
		runes = runes[1:]
	}
	for len(runes) > 0 && runes[0] == '_' {
		runes = runes[1:]
	}

	var sb strings.Builder
	for i, r := range runes {
		if r == '_' {
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteByte(' ')
			}
			continue
		}
		if i > 0 && sb.Len() > 0 && wordStart(runes, i) && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		if sb.Len() == 0 {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

func wordStart(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsUpper(cur) && unicode.IsLower(prev):
		return true
	case unicode.IsUpper(cur) && unicode.IsUpper(prev):
		// end of an acronym: "HTMLReport" breaks before "R"
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	case unicode.IsDigit(cur) && !unicode.IsDigit(prev):
		return true
	}
	return false
}
