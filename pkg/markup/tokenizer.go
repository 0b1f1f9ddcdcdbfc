// tokenizer.go implements tokenization of icon(...) and link(...) line markup.
package markup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	errUnterminatedMarker = errors.New("unterminated marker")
	errEmptyMarker        = errors.New("empty marker")
)

// Tokenize parses one list line into a ParsedLine. It never fails:
// malformed markup degrades to plain text.
func Tokenize(line string) ParsedLine {
	return ParseLine(line).Line
}

// ParseLine is Tokenize plus the warnings raised for degraded markup.
// Divider lines are classified as a whole, without fragment decomposition.
func ParseLine(line string) *ParseResult {
	if IsDivider(line) {
		return &ParseResult{Line: ParsedLine{Kind: LineDivider}}
	}
	return scanFragments(line)
}

// TokenizeMessage parses a whole free-text string. Unlike Tokenize it never
// classifies dividers; line breaks are ordinary text.
func TokenizeMessage(text string) ParsedLine {
	return ParseMessage(text).Line
}

// ParseMessage is TokenizeMessage plus the warnings raised for degraded markup.
func ParseMessage(text string) *ParseResult {
	return scanFragments(text)
}

// scanFragments walks the input looking for registered markers.
// Text between markers becomes trimmed Text fragments.
func scanFragments(input string) *ParseResult {
	result := &ParseResult{}
	var fragments []Fragment
	pos := 0
	textStart := 0

	for pos < len(input) {
		mt, ok := markerAt(input, pos)
		if !ok {
			pos++
			continue
		}

		fragment, endPos, err := parseMarker(input, pos, mt)
		if errors.Is(err, errUnterminatedMarker) {
			// Everything from here on is text.
			result.Warn(fmt.Sprintf("unterminated %s( at offset %d, kept as text", mt.Name, pos))
			break
		}
		if err != nil {
			// Leave the marker inside the surrounding text run.
			result.Warn(fmt.Sprintf("%s %s( at offset %d, kept as text", err, mt.Name, pos))
			pos = endPos
			continue
		}

		fragments = appendText(fragments, input[textStart:pos], textStart)
		fragments = append(fragments, fragment)
		pos = endPos
		textStart = pos
	}

	fragments = appendText(fragments, input[textStart:], textStart)
	result.Line = newParsedLine(fragments)
	return result
}

// appendText adds a trimmed text fragment; whitespace-only runs are dropped.
func appendText(fragments []Fragment, text string, position int) []Fragment {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fragments
	}
	f := TextFragment(trimmed)
	f.Position = position
	return append(fragments, f)
}

// markerAt reports which marker, if any, opens at pos.
// A marker must start at a word boundary: "myicon(x)" is plain text.
func markerAt(input string, pos int) (MarkerType, bool) {
	if pos > 0 {
		prev, _ := utf8.DecodeLastRuneInString(input[:pos])
		if isWordRune(prev) {
			return MarkerType{}, false
		}
	}
	for _, name := range MarkerNames() {
		if strings.HasPrefix(input[pos:], name+"(") {
			return LookupMarker(name)
		}
	}
	return MarkerType{}, false
}

// parseMarker parses the marker starting at pos. Parentheses may nest inside
// the content; the marker ends at the matching close parenthesis.
// Returns the fragment and the position after the closing parenthesis.
func parseMarker(input string, pos int, mt MarkerType) (Fragment, int, error) {
	open := pos + len(mt.Name)
	depth := 0
	closeIdx := -1
	for i := open; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return Fragment{}, len(input), errUnterminatedMarker
	}

	endPos := closeIdx + 1
	fragment, err := buildMarkerFragment(mt, input[open+1:closeIdx])
	if err != nil {
		return Fragment{}, endPos, err
	}
	fragment.Position = pos
	return fragment, endPos, nil
}

// buildMarkerFragment turns marker content into a fragment.
func buildMarkerFragment(mt MarkerType, content string) (Fragment, error) {
	switch mt.Kind {
	case FragmentIcon:
		name := strings.TrimSpace(content)
		if name == "" {
			return Fragment{}, errEmptyMarker
		}
		return IconFragment(name), nil

	case FragmentLink:
		label, href, _ := strings.Cut(content, LinkSeparator)
		label = strings.TrimSpace(label)
		href = strings.TrimSpace(href)
		if label == "" {
			if href == "" {
				return Fragment{}, errEmptyMarker
			}
			label = href
		}
		return LinkFragment(label, href), nil

	default:
		return Fragment{}, fmt.Errorf("unsupported marker %q", mt.Name)
	}
}

// isWordRune returns true if r can be part of an identifier-like word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
