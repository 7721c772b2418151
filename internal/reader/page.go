// Package reader holds the terminal-independent rules of the chapter
// reader: pagination, verse text cleanup, the verse action modal,
// appearance settings and chapter search.
package reader

import "github.com/glabrego/noor-cli/internal/quran"

const PageSize = 25

func PageCount(verses int) int {
	if verses <= 0 {
		return 0
	}
	return (verses + PageSize - 1) / PageSize
}

func ClampPage(page, count int) int {
	if count < 1 {
		count = 1
	}
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// PageForVerse returns the 1-based page holding verse v.
func PageForVerse(v int) int {
	if v < 1 {
		return 1
	}
	return (v + PageSize - 1) / PageSize
}

// PageBounds returns slice indexes [start, end) of page p in a list of n
// verses.
func PageBounds(page, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	page = ClampPage(page, PageCount(n))
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > n {
		end = n
	}
	return start, end
}

func PageVerses(verses []quran.Verse, page int) []quran.Verse {
	start, end := PageBounds(page, len(verses))
	return verses[start:end]
}

// Pager tracks the current page of one loaded chapter.
type Pager struct {
	page  int
	count int
}

func NewPager(verses int) Pager {
	return Pager{page: 1, count: PageCount(verses)}
}

func (p Pager) Page() int  { return ClampPage(p.page, p.count) }
func (p Pager) Count() int { return p.count }

func (p *Pager) Next() bool {
	if p.page >= p.count {
		return false
	}
	p.page++
	return true
}

func (p *Pager) Prev() bool {
	if p.page <= 1 {
		return false
	}
	p.page--
	return true
}

// Jump moves to page, clamped to the valid range.
func (p *Pager) Jump(page int) {
	p.page = ClampPage(page, p.count)
}
