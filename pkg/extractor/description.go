package extractor

import (
	"regexp"
	"strings"
)

// declarationStart matches the exported declaration that must follow a doc block.
var declarationStart = regexp.MustCompile(`^\s*export\s+(?:default\s+)?(?:const|function|class)\b`)

// ExtractDescription returns the text of the first doc block that opens on a
// bare "/**" line and is immediately followed by an exported const, function
// or class declaration. Blocks above unexported declarations are skipped. Continuation markers and surrounding
// whitespace are stripped and blank lines dropped.
func ExtractDescription(src string) Description {
	for offset := 0; offset < len(src); {
		open := strings.Index(src[offset:], "/**")
		if open < 0 {
			break
		}
		bodyStart := offset + open + len("/**")
		closeAt := strings.Index(src[bodyStart:], "*/")
		if closeAt < 0 {
			break
		}
		body := src[bodyStart : bodyStart+closeAt]
		after := src[bodyStart+closeAt+len("*/"):]
		offset = bodyStart + closeAt + len("*/")

		nl := strings.IndexByte(body, '\n')
		if nl < 0 || strings.TrimSpace(body[:nl]) != "" {
			continue
		}
		if !declarationStart.MatchString(after) {
			continue
		}

		if text := cleanDocLines(body[nl+1:]); text != "" {
			return Description{Text: text, Present: true}
		}
	}

	return Description{Text: DescriptionPlaceholder, Present: false}
}

// cleanDocLines strips comment-continuation markers from each line of a doc
// block body and joins the non-blank lines with newlines.
func cleanDocLines(body string) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
