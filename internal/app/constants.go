package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// MaxPageWidth caps the reading column; wider terminals get side margins.
	MaxPageWidth = 96

	// HeaderRows is the nav bar plus its indicator row.
	HeaderRows = 2

	// GutterWidth is the highlight column to the left of every page line.
	GutterWidth = 2

	// DialogMaxWidth bounds the project/post dialog.
	DialogMaxWidth = 76
	// DialogMaxHeight bounds the dialog including its border.
	DialogMaxHeight = 24
	// HelpPopupWidth is the width of the key reference popup.
	HelpPopupWidth = 64

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area. The app targets two rows on typical terminal widths.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// FilterCharLimit is the maximum number of characters in the filter input.
	FilterCharLimit = 64
)

// Rendering and animation constants
const (
	// FrameInterval paces the highlight and magnetic springs.
	FrameInterval = time.Second / 60

	// RenderWidthBucket is the granularity for width-based render caching
	// Widths are rounded to nearest multiple of this value
	RenderWidthBucket = 4

	// WheelStep is how many lines one wheel notch scrolls.
	WheelStep = 3
)

// Magnetic link constants, in cells.
const (
	LinkIntensity = 0.4
	LinkRange     = 10.0
	// LinkMaxShift bounds how far a pill may drift inside its slot.
	LinkMaxShift = 2
)
