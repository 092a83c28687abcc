package statement

type lineEntry struct {
	normalized string
	continues  bool
}

// lineCache memoizes the cleaned text and continuation flag of each line for
// the duration of one resolution.
type lineCache struct {
	src     Source
	entries map[int]lineEntry

	// cells counts the positions (characters plus both sentinels) of every
	// cached line and bounds the scan.
	cells int
}

func newLineCache(src Source) *lineCache {
	return &lineCache{
		src:     src,
		entries: make(map[int]lineEntry),
	}
}

func (c *lineCache) entry(line int) lineEntry {
	if e, ok := c.entries[line]; ok {
		return e
	}
	cleaned := CleanLine(c.src.Line(line))
	e := lineEntry{
		normalized: cleaned,
		continues:  Continues(cleaned),
	}
	c.entries[line] = e
	c.cells += len(cleaned) + 2
	return e
}

func (c *lineCache) normalized(line int) string {
	return c.entry(line).normalized
}

func (c *lineCache) continues(line int) bool {
	return c.entry(line).continues
}
