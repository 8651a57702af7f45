package paginate

// Item is one block's height and whether it must share a page with the
// block after it.
type Item struct {
	Height       float64
	KeepWithNext bool
}

// Split folds items into pages of at most budget height and returns the
// item indices on each page. A block taller than the budget is never
// split; it sits alone on its page. A keep-with-next block that would be
// left at the bottom of a page without its successor moves to the next page.
func Split(items []Item, budget float64) [][]int {
	var (
		pages [][]int
		cur   []int
		used  float64
	)
	newPage := func() {
		if len(cur) > 0 {
			pages = append(pages, cur)
		}
		cur, used = nil, 0
	}

	for i, it := range items {
		if len(cur) > 0 && used+it.Height > budget {
			newPage()
		}
		if it.KeepWithNext && len(cur) > 0 && i+1 < len(items) &&
			used+it.Height+items[i+1].Height > budget {
			newPage()
		}
		cur = append(cur, i)
		used += it.Height
	}
	newPage()
	return pages
}
