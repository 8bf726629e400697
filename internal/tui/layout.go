package tui

const (
	minLineWidth      = 20
	horizontalPadding = 2
	minStackHeight    = 1
	// input, mode bar, status and help
	chromeHeight = 4
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	lineWidth    int
	stackHeight  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		lineWidth:   80,
		stackHeight: 20,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	l.lineWidth = width - horizontalPadding
	if l.lineWidth < minLineWidth {
		l.lineWidth = minLineWidth
	}
	l.stackHeight = height - chromeHeight
	if l.stackHeight < minStackHeight {
		l.stackHeight = minStackHeight
	}
}

// visible returns the index of the first stack entry to show and how many
// older entries are hidden. When entries are hidden one row goes to the
// overflow marker.
func (l pageLayout) visible(entries int) (first, hidden int) {
	if entries <= l.stackHeight {
		return 0, 0
	}
	shown := l.stackHeight - 1
	if shown < 0 {
		shown = 0
	}
	hidden = entries - shown
	return hidden, hidden
}
