package bounds

// TotalPages returns the number of pages needed to hold totalItems items
// at pageSize items per page. Returns 0 when totalItems or pageSize is
// not positive.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// StartIndex returns the 0-based index of the first item on the given
// page. Returns 0 when page or pageSize is not positive.
func StartIndex(page, pageSize int) int {
	if page <= 0 || pageSize <= 0 {
		return 0
	}
	return (page - 1) * pageSize
}

// EndIndex returns the 0-based exclusive end index for slicing the given
// page out of a collection of totalItems items. The result never exceeds
// totalItems, so the last page may be shorter than pageSize.
func EndIndex(page, pageSize, totalItems int) int {
	end := StartIndex(page, pageSize) + pageSize
	if end > totalItems {
		return totalItems
	}
	return end
}

// IsValidPage reports whether page falls inside [1, totalPages].
func IsValidPage(page, totalPages int) bool {
	return page >= 1 && page <= totalPages
}
