package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	xmlDeclRe     = regexp.MustCompile(`<\?xml[^?]*\?>`)
	xmlCommentRe  = regexp.MustCompile(`<!--[^>]*-->`)
	widthAttrRe   = regexp.MustCompile(`\s+width="[^"]*"`)
	heightAttrRe  = regexp.MustCompile(`\s+height="[^"]*"`)
	fillAttrRe    = regexp.MustCompile(`fill="[^"]*"`)
	strokeAttrRe  = regexp.MustCompile(`stroke="[^"]*"`)
	fillStyleRe   = regexp.MustCompile(`fill:\s*([^;"'}]+)`)
	strokeStyleRe = regexp.MustCompile(`stroke:\s*([^;"'}]+)`)
)

// RewriteForInline prepares SVG markup for inline embedding so the page's
// CSS color drives the icon. It strips the XML declaration, comments, and
// fixed width/height attributes, and rewrites fill/stroke colors to
// currentColor (attribute and style-declaration form alike), preserving
// "none" values.
func RewriteForInline(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: svg is not valid UTF-8", ErrCorrupt)
	}

	svg := string(data)
	svg = xmlDeclRe.ReplaceAllString(svg, "")
	svg = xmlCommentRe.ReplaceAllString(svg, "")
	svg = widthAttrRe.ReplaceAllString(svg, "")
	svg = heightAttrRe.ReplaceAllString(svg, "")

	svg = fillAttrRe.ReplaceAllStringFunc(svg, func(match string) string {
		if match == `fill="none"` {
			return match
		}
		return `fill="currentColor"`
	})
	svg = strokeAttrRe.ReplaceAllStringFunc(svg, func(match string) string {
		if match == `stroke="none"` {
			return match
		}
		return `stroke="currentColor"`
	})

	svg = fillStyleRe.ReplaceAllStringFunc(svg, func(match string) string {
		if styleValue(match) == "none" {
			return match
		}
		return "fill:currentColor"
	})
	svg = strokeStyleRe.ReplaceAllStringFunc(svg, func(match string) string {
		if styleValue(match) == "none" {
			return match
		}
		return "stroke:currentColor"
	})

	return strings.TrimSpace(svg), nil
}

// styleValue extracts the trimmed value from a "prop: value" declaration.
func styleValue(declaration string) string {
	_, value, found := strings.Cut(declaration, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
