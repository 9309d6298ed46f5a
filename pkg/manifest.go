package bumpversion

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Span is the location of a version literal's contents inside a manifest.
// Start and End are byte offsets; Line is 1-based.
type Span struct {
	Start int
	End   int
	Line  int
	Value string
}

// Locator finds the single authoritative version literal inside the named
// section of a manifest.
type Locator interface {
	Locate(content []byte, section string) (Span, error)
}

// Locators lists the names accepted by ParseLocator.
var Locators = []string{"line", "regex", "toml"}

// ParseLocator returns the locator strategy registered under name. An empty
// name selects the line scanner.
func ParseLocator(name string) (Locator, error) {
	switch name {
	case "", "line":
		return LineScanner{}, nil
	case "regex":
		return RegexLocator{}, nil
	case "toml":
		return TOMLLocator{}, nil
	}
	return nil, fmt.Errorf("%w: unknown parser %q (want one of %s)", ErrUsage, name, strings.Join(Locators, ", "))
}

// ReplaceSpan returns a copy of content with the span's bytes replaced by
// value. Every other byte is left untouched.
func ReplaceSpan(content []byte, span Span, value string) []byte {
	out := make([]byte, 0, len(content)-(span.End-span.Start)+len(value))
	out = append(out, content[:span.Start]...)
	out = append(out, value...)
	return append(out, content[span.End:]...)
}

// headerNameRE is shared by the line and regex strategies. Commas are not
// allowed so that array elements such as ["a", "b"] are never headers.
var (
	headerNameRE = regexp.MustCompile(`^[A-Za-z0-9_\-. "']+$`)
	versionKeyRE = regexp.MustCompile(`^[ \t]*version[ \t]*=[ \t]*`)
)

// normalizeSection turns `tool . "poetry"` into `tool.poetry`.
func normalizeSection(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"'`)
	}
	return strings.Join(parts, ".")
}

// sectionHeader reports whether line is a table header and returns the
// table name. Array-of-tables headers return an empty name since they can
// never be the designated section.
func sectionHeader(line []byte) (string, bool) {
	s := strings.TrimSpace(string(line))
	if !strings.HasPrefix(s, "[") {
		return "", false
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	open, closing := "[", "]"
	if strings.HasPrefix(s, "[[") {
		open, closing = "[[", "]]"
	}
	if !strings.HasSuffix(s, closing) || len(s) < len(open)+len(closing) {
		return "", false
	}
	name := s[len(open) : len(s)-len(closing)]
	if !headerNameRE.MatchString(name) {
		return "", false
	}
	if open == "[[" {
		return "", true
	}
	return normalizeSection(name), true
}

// versionValue inspects one line for a version assignment. found is true
// when the line assigns version at all; err is set when the value is not a
// single quoted literal.
func versionValue(line []byte) (start, end int, found bool, err error) {
	m := versionKeyRE.FindIndex(line)
	if m == nil {
		return 0, 0, false, nil
	}
	rest := bytes.TrimRight(line[m[1]:], "\r")
	if len(rest) == 0 || (rest[0] != '"' && rest[0] != '\'') {
		return 0, 0, true, fmt.Errorf("%w: value is not a quoted literal", ErrUnparsableVersion)
	}
	quote := rest[0]
	closeAt := bytes.IndexByte(rest[1:], quote)
	if closeAt < 0 {
		return 0, 0, true, fmt.Errorf("%w: unterminated string", ErrUnparsableVersion)
	}
	if tail := bytes.TrimSpace(rest[closeAt+2:]); len(tail) > 0 && tail[0] != '#' {
		return 0, 0, true, fmt.Errorf("%w: unexpected %q after value", ErrUnparsableVersion, tail)
	}
	start = m[1] + 1
	return start, start + closeAt, true, nil
}

// LineScanner walks the manifest line by line, tracking the current table
// header. The first version assignment inside the section wins.
type LineScanner struct{}

func (LineScanner) Locate(content []byte, section string) (Span, error) {
	section = normalizeSection(section)
	inSection, seen := false, false

	lineNo := 0
	for pos := 0; pos < len(content); {
		end, next := len(content), len(content)
		if i := bytes.IndexByte(content[pos:], '\n'); i >= 0 {
			end, next = pos+i, pos+i+1
		}
		line := content[pos:end]
		lineNo++

		if name, ok := sectionHeader(line); ok {
			inSection = name == section
			seen = seen || inSection
		} else if inSection {
			vs, ve, found, err := versionValue(line)
			if err != nil {
				return Span{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if found {
				return Span{Start: pos + vs, End: pos + ve, Line: lineNo, Value: string(line[vs:ve])}, nil
			}
		}
		pos = next
	}

	if !seen {
		return Span{}, fmt.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}
	return Span{}, fmt.Errorf("%w in [%s]", ErrFieldNotFound, section)
}

var (
	headerRE     = regexp.MustCompile(`(?m)^[ \t]*(\[\[?)([A-Za-z0-9_\-. "']+)\]\]?[ \t]*(?:#.*)?\r?$`)
	assignKeyRE  = regexp.MustCompile(`(?m)^[ \t]*version[ \t]*=`)
	assignFullRE = regexp.MustCompile(`(?m)^[ \t]*version[ \t]*=[ \t]*(?:"([^"\r\n]*)"|'([^'\r\n]*)')[ \t]*(?:#.*)?\r?$`)
)

// RegexLocator slices the section body out with a header pattern and then
// matches the version assignment inside it.
type RegexLocator struct{}

func (RegexLocator) Locate(content []byte, section string) (Span, error) {
	section = normalizeSection(section)
	headers := headerRE.FindAllSubmatchIndex(content, -1)

	seen := false
	for i, h := range headers {
		if string(content[h[2]:h[3]]) != "[" || normalizeSection(string(content[h[4]:h[5]])) != section {
			continue
		}
		seen = true

		bodyStart, bodyEnd := h[1], len(content)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		body := content[bodyStart:bodyEnd]

		key := assignKeyRE.FindIndex(body)
		if key == nil {
			continue
		}
		line := bytes.Count(content[:bodyStart+key[0]], []byte("\n")) + 1
		m := assignFullRE.FindSubmatchIndex(body)
		if m == nil || m[0] != key[0] {
			return Span{}, fmt.Errorf("line %d: %w: value is not a quoted literal", line, ErrUnparsableVersion)
		}
		vs, ve := m[2], m[3]
		if vs < 0 {
			vs, ve = m[4], m[5]
		}
		return Span{
			Start: bodyStart + vs,
			End:   bodyStart + ve,
			Line:  line,
			Value: string(body[vs:ve]),
		}, nil
	}

	if !seen {
		return Span{}, fmt.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}
	return Span{}, fmt.Errorf("%w in [%s]", ErrFieldNotFound, section)
}

// TOMLLocator decodes the manifest as TOML to check the section and field,
// then uses the line scanner for the byte span. Both views must agree on
// the value.
type TOMLLocator struct{}

func (TOMLLocator) Locate(content []byte, section string) (Span, error) {
	section = normalizeSection(section)

	var doc map[string]any
	if err := toml.Unmarshal(content, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Span{}, fmt.Errorf("%w: invalid TOML at line %d column %d: %v", ErrUnparsableVersion, row, col, derr)
		}
		return Span{}, fmt.Errorf("%w: invalid TOML: %v", ErrUnparsableVersion, err)
	}

	table, ok := lookupTable(doc, section)
	if !ok {
		return Span{}, fmt.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}
	raw, ok := table["version"]
	if !ok {
		return Span{}, fmt.Errorf("%w in [%s]", ErrFieldNotFound, section)
	}
	value, ok := raw.(string)
	if !ok {
		return Span{}, fmt.Errorf("%w: version is a %T, not a string", ErrUnparsableVersion, raw)
	}

	span, err := LineScanner{}.Locate(content, section)
	if err != nil {
		return Span{}, err
	}
	if span.Value != value {
		return Span{}, fmt.Errorf("line %d: %w: literal %q decodes to %q", span.Line, ErrUnparsableVersion, span.Value, value)
	}
	return span, nil
}

// lookupTable descends a decoded document along a dotted table name.
func lookupTable(doc map[string]any, name string) (map[string]any, bool) {
	cur := doc
	for _, key := range strings.Split(name, ".") {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
