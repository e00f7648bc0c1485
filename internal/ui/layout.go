package ui

import "torus-life/pkg/core"

const (
	panelMargin    = 8
	panelPadding   = 10
	lineHeight     = 16
	groupGap       = 6
	headerBaseline = 4
)

// panelHeight is the pixel height needed to list every group header and
// parameter of s.
func panelHeight(s core.ParameterSnapshot) int {
	lines := 0
	for _, g := range s.Groups {
		lines += 1 + len(g.Params)
	}
	return 2*panelPadding + lines*lineHeight + len(s.Groups)*groupGap
}
