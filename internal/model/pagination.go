package model

// PageQuery carries validated pagination parameters for list operations.
type PageQuery struct {
	Page  int
	Limit int
}

// Offset returns the number of documents to skip.
func (q PageQuery) Offset() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// Pagination is the envelope metadata returned alongside every list response.
type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the pagination envelope for a list of total documents
// viewed through the given page query.
func NewPagination(q PageQuery, total int64) *Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &Pagination{
		Page:       q.Page,
		TotalPages: totalPages,
		Total:      total,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}
}
