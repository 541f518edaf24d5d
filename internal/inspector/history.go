package inspector

import "image-inspector/internal/imaging"

// History is a bounded stack of replaced original images. A depth of zero
// disables it, which makes isolation and conversion irreversible.
type History struct {
	depth   int
	entries []*imaging.Image
}

func NewHistory(depth int) *History {
	if depth < 0 {
		depth = 0
	}
	return &History{depth: depth, entries: make([]*imaging.Image, 0, depth)}
}

// Push records img, evicting the oldest entry once depth is reached.
func (h *History) Push(img *imaging.Image) {
	if h.depth == 0 {
		return
	}
	if len(h.entries) == h.depth {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, img)
}

func (h *History) Pop() (*imaging.Image, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Clear() {
	for i := range h.entries {
		h.entries[i] = nil
	}
	h.entries = h.entries[:0]
}
