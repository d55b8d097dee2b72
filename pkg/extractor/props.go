package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// delegatingAlias matches `type XProps = Other;` with no object body.
	delegatingAlias = regexp.MustCompile(
		`(?m)^[ \t]*(?:export[ \t]+)?(?:declare[ \t]+)?type[ \t]+(\w*Props)(?:<[^>\n]*>)?[ \t]*=[ \t]*([^{};\n]*[^{};\s&|,(<=])[ \t]*;?[ \t]*$`)

	// objectPropsStart matches the keyword and name of an interface or type
	// alias props declaration. The body brace is located by bodyOpen.
	objectPropsStart = regexp.MustCompile(
		`(?m)^[ \t]*(?:export[ \t]+)?(?:declare[ \t]+)?(?:interface|type)[ \t]+\w*Props\b`)

	// propLine matches `[readonly] name[?]: type`; the name may be quoted.
	propLine = regexp.MustCompile(
		`^(?:readonly\s+)?(?:'([^']+)'|"([^"]+)"|([A-Za-z_$][\w$]*))(\?)?\s*:\s*(.*)$`)

	// singleLineDoc matches `/** text */` with optional trailing content.
	singleLineDoc = regexp.MustCompile(`^/\*\*(.*?)\*/\s*(.*)$`)

	trailingLineComment = regexp.MustCompile(`(^|\s)//.*$`)
)

// ExtractProperties returns the declared properties of the first props type
// in src, in declaration order.
//
// A pure delegating alias (`type XProps = Other;`) yields exactly one
// sentinel descriptor named SpreadPropName and nothing else. Otherwise the
// body of the first `interface XProps {}` or `type XProps = {}` is scanned
// line by line. When no props declaration is found the result is empty.
func ExtractProperties(src string) []PropDescriptor {
	if m := delegatingAlias.FindStringSubmatch(src); m != nil {
		target := strings.TrimSpace(m[2])
		return []PropDescriptor{{
			Name:        SpreadPropName,
			Type:        target,
			Required:    false,
			Description: fmt.Sprintf("Props are delegated to %s.", target),
		}}
	}

	for _, loc := range objectPropsStart.FindAllStringIndex(src, -1) {
		if start := bodyOpen(src, loc[1]); start >= 0 {
			return scanPropsBody(objectBody(src, start))
		}
	}
	return []PropDescriptor{}
}

// bodyOpen returns the offset just past the brace that opens the object body
// of a declaration header starting at from, or -1 if the header ends first.
// Braces inside type arguments (`Base<{ a: string }>`) are skipped.
func bodyOpen(src string, from int) int {
	angle := 0
	for i := from; i < len(src); i++ {
		switch src[i] {
		case '<':
			angle++
		case '>':
			if angle > 0 && src[i-1] != '=' {
				angle--
			}
		case '{':
			if angle == 0 {
				return i + 1
			}
			if end := objectBody(src, i+1); i+1+len(end) < len(src) {
				i += len(end) + 1
			} else {
				return -1
			}
		case ';':
			if angle == 0 {
				return -1
			}
		}
	}
	return -1
}

// objectBody returns the text between the opening brace that ends at
// bodyStart and its matching closing brace. An unbalanced body runs to the
// end of src.
func objectBody(src string, bodyStart int) string {
	depth := 1
	for i := bodyStart; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[bodyStart:i]
			}
		}
	}
	return src[bodyStart:]
}

// propScanner holds the line-by-line state of a props body scan.
type propScanner struct {
	props []PropDescriptor
	// pending is the description waiting for the next property.
	pending string
	// docLines collects a multi-line doc comment while inDoc is set.
	docLines []string
	inDoc    bool
	// depth is the nesting level of braces opened inside the body.
	depth int
}

func scanPropsBody(body string) []PropDescriptor {
	s := &propScanner{props: []PropDescriptor{}}
	for _, raw := range strings.Split(body, "\n") {
		s.scanLine(strings.TrimSpace(raw))
	}
	return s.props
}

func (s *propScanner) scanLine(line string) {
	if s.inDoc {
		end := strings.Index(line, "*/")
		if end < 0 {
			s.docLines = append(s.docLines, line)
			return
		}
		s.docLines = append(s.docLines, line[:end])
		s.pending = cleanDocLines(strings.Join(s.docLines, "\n"))
		s.inDoc = false
		s.docLines = nil
		line = strings.TrimSpace(line[end+len("*/"):])
		if line == "" {
			return
		}
	}

	if s.depth > 0 {
		s.depth += braceDelta(line)
		if s.depth < 0 {
			s.depth = 0
		}
		return
	}

	if m := singleLineDoc.FindStringSubmatch(line); m != nil {
		s.pending = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m[1]), "*"))
		if rest := strings.TrimSpace(m[2]); rest != "" {
			s.scanLine(rest)
		}
		return
	}
	if strings.HasPrefix(line, "/**") && !strings.HasPrefix(line, "/**/") {
		s.inDoc = true
		s.docLines = []string{strings.TrimPrefix(line, "/**")}
		return
	}

	if m := propLine.FindStringSubmatch(line); m != nil {
		name := m[1] + m[2] + m[3]
		s.props = append(s.props, PropDescriptor{
			Name:        name,
			Type:        propType(m[5]),
			Required:    m[4] == "",
			Description: s.pending,
		})
		s.pending = ""
	}

	if d := braceDelta(line); d > 0 {
		s.depth = d
	}
}

// propType trims raw type text to its first statement terminator and drops
// any trailing line comment.
func propType(raw string) string {
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	raw = trailingLineComment.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(raw)
	return strings.TrimSpace(strings.TrimSuffix(raw, ","))
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
