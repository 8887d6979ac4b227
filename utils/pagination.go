package utils

// PaginationInfo describes one page of a paginated listing.
type PaginationInfo struct {
	Page       uint32 `json:"page"`
	PerPage    uint32 `json:"per_page"`
	Total      uint32 `json:"total"`
	TotalPages uint32 `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
}

// CalculatePagination derives page navigation info from a total count. A zero
// perPage yields zero pages rather than dividing by zero.
func CalculatePagination(total, page, perPage uint32) PaginationInfo {
	if perPage == 0 {
		return PaginationInfo{Page: page, Total: total}
	}

	totalPages := (total + perPage - 1) / perPage

	return PaginationInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
