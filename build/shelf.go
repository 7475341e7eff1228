package build

// ShelfPacker implements fixed-height shelf packing for a fixed-width atlas.
//
// Rectangles are placed left to right on the current shelf; when the next
// one does not fit the remaining width, a new shelf is started below.
// Every shelf is rowHeight tall and the atlas grows downwards without
// bound. Placement is greedy and order dependent; it does not try to
// minimize the atlas height.
type ShelfPacker struct {
	width     int // Total width of the atlas
	rowHeight int // Height of every shelf
	padding   int // Padding between glyphs and between shelves

	x, y    int // Next free slot on the current shelf
	shelves int

	// Tracking for utilization
	usedArea int
}

// NewShelfPacker creates a packer for the given atlas width and row height.
func NewShelfPacker(width, rowHeight, padding int) *ShelfPacker {
	return &ShelfPacker{
		width:     width,
		rowHeight: rowHeight,
		padding:   padding,
		shelves:   1,
	}
}

// Place finds space for a rectangle of the given size.
// Returns the top-left position, or -1, -1, false if the rectangle is
// wider than the atlas or taller than a shelf.
func (p *ShelfPacker) Place(w, h int) (x, y int, ok bool) {
	if w > p.width || h > p.rowHeight {
		return -1, -1, false
	}

	// Wrap to a new shelf
	if p.x+w > p.width {
		p.x = 0
		p.y += p.rowHeight + p.padding
		p.shelves++
	}

	x, y = p.x, p.y
	p.x += w + p.padding
	p.usedArea += w * h
	return x, y, true
}

// Height returns the atlas height needed for everything placed so far:
// the top of the current shelf plus the row height.
func (p *ShelfPacker) Height() int {
	return p.y + p.rowHeight
}

// ShelfCount returns the number of shelves currently in use.
func (p *ShelfPacker) ShelfCount() int {
	return p.shelves
}

// Utilization returns the fraction of the atlas covered by placed rectangles (0.0 to 1.0).
func (p *ShelfPacker) Utilization() float64 {
	total := p.width * p.Height()
	if total <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}
