package timecache

// slot holds the formatted value of one second.
type slot struct {
	value string
	set   bool
}

// window is a cyclic buffer of consecutive seconds [first, last].
//
// Slot of second s is at (offset + s - first) mod len(slots), so moving the window
// rotates offset instead of moving values.
type window struct {
	slots     []slot
	first     int64
	last      int64
	offset    int
	populated bool
}

func newWindow(capacity int) window {
	return window{slots: make([]slot, capacity)}
}

func (w *window) contains(second int64) bool {
	return w.populated && second >= w.first && second <= w.last
}

// index returns the physical slot position of second, second may be out of window.
func (w *window) index(second int64) int {
	n := int64(len(w.slots))

	return int(floorMod(int64(w.offset)+floorMod(second-w.first, n), n))
}

// shift moves the window so that it contains second and returns the slot position of second.
// Slots of seconds leaving the window are cleared.
func (w *window) shift(second int64) (idx int, reset bool) {
	n := int64(len(w.slots))

	switch {
	case !w.populated || second >= w.last+n || second <= w.first-n:
		w.reset(second)

		return 0, true
	case second > w.last:
		idx = w.index(second)

		// Seconds first..first+k-1 leave, their slots are taken by last+1..second.
		w.clear(w.offset, second-w.last)
		w.first = second - n + 1
		w.last = second
		w.offset = (idx + 1) % len(w.slots)
	default:
		idx = w.index(second)

		// Seconds last-k+1..last leave, their slots are taken by second..first-1.
		w.clear(idx, w.first-second)
		w.first = second
		w.last = second + n - 1
		w.offset = idx
	}

	return idx, false
}

func (w *window) reset(second int64) {
	for i := range w.slots {
		w.slots[i] = slot{}
	}

	w.first = second
	w.last = second + int64(len(w.slots)) - 1
	w.offset = 0
	w.populated = true
}

// clear empties k consecutive slots starting at physical position from.
func (w *window) clear(from int, k int64) {
	n := len(w.slots)

	for i := 0; i < int(k); i++ {
		w.slots[(from+i)%n] = slot{}
	}
}

func (w *window) drop() {
	for i := range w.slots {
		w.slots[i] = slot{}
	}

	w.first, w.last, w.offset = 0, 0, 0
	w.populated = false
}
