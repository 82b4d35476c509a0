package query

// PageMeta describes one page of a listing.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// NewPageMeta computes page metadata for count rows returned out of total.
// LastPage is at least 1; From and To are 0 for an empty page.
func NewPageMeta(page Page, total int64, count int) PageMeta {
	meta := PageMeta{
		CurrentPage: page.Number,
		PerPage:     page.Size,
		Total:       total,
		LastPage:    1,
	}

	if page.Size > 0 && total > 0 {
		size := int64(page.Size)
		meta.LastPage = int((total + size - 1) / size)
	}

	if count > 0 {
		meta.From = page.Offset() + 1
		meta.To = page.Offset() + count
	}

	return meta
}
