package formatter

import "strings"

// Drawing toolbox
const (
	TopLeftCorner    = "┌"
	BottomLeftCorner = "└"
	MiddleCorner     = "├"
	HorizontalLine   = "│"
)

var (
	doubleDivider = strings.Repeat("─", 56)
	singleDivider = strings.Repeat("┄", 56)

	// TopBorder opens every block
	TopBorder = TopLeftCorner + doubleDivider + doubleDivider
	// BottomBorder closes every block
	BottomBorder = BottomLeftCorner + doubleDivider + doubleDivider
	// MiddleBorder separates the header sections from the body
	MiddleBorder = MiddleCorner + singleDivider + singleDivider
)

// callSiteIndent is added once per printed call-site line
const callSiteIndent = "   "
