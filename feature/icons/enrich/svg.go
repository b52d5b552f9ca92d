package enrich

import (
	"regexp"
	"strings"
)

var svgWrapper = regexp.MustCompile(`<svg[^>]*>|</svg>`)

// NormalizeSVG strips the wrapping <svg> element and surrounding whitespace.
// Nothing inside the body is canonicalized: attribute order, inner
// whitespace and path precision must match exactly for two bodies to be equal.
func NormalizeSVG(svg string) string {
	return strings.TrimSpace(svgWrapper.ReplaceAllString(svg, ""))
}

// groupBySVG maps every normalized body to the ids sharing it.
func groupBySVG(svgs map[string]string) map[string][]string {
	groups := make(map[string][]string)
	for id, svg := range svgs {
		body := NormalizeSVG(svg)
		groups[body] = append(groups[body], id)
	}
	return groups
}
