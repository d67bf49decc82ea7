package dto

import "github.com/Tickatch/log-service/internal/domain"

// PageResponse is the stable wire shape for paged list results. It decouples
// the response format from the in-process page representation.
type PageResponse[T any] struct {
	Content  []T      `json:"content"`
	PageInfo PageInfo `json:"pageInfo"`
}

// PageInfo carries the pagination metadata of one page.
type PageInfo struct {
	Page             int        `json:"page"`
	Size             int        `json:"size"`
	TotalElements    int64      `json:"totalElements"`
	TotalPages       int        `json:"totalPages"`
	NumberOfElements int        `json:"numberOfElements"`
	First            bool       `json:"first"`
	Last             bool       `json:"last"`
	HasNext          bool       `json:"hasNext"`
	HasPrevious      bool       `json:"hasPrevious"`
	Empty            bool       `json:"empty"`
	Sort             []SortInfo `json:"sort,omitempty"`
}

// SortInfo describes one applied sort descriptor.
type SortInfo struct {
	Property   string `json:"property"`
	Direction  string `json:"direction"`
	IgnoreCase bool   `json:"ignoreCase"`
}

// NewPageResponse shapes an internal page into the wire representation,
// converting each element with the given mapper.
func NewPageResponse[T, R any](p domain.Page[T], mapper func(T) R) PageResponse[R] {
	content := make([]R, len(p.Content))
	for i, item := range p.Content {
		content[i] = mapper(item)
	}

	sort := make([]SortInfo, 0, len(p.Sort))
	for _, o := range p.Sort {
		sort = append(sort, SortInfo{
			Property:   o.Property,
			Direction:  string(o.Direction),
			IgnoreCase: o.IgnoreCase,
		})
	}

	return PageResponse[R]{
		Content: content,
		PageInfo: PageInfo{
			Page:             p.Number,
			Size:             p.Size,
			TotalElements:    p.TotalElements,
			TotalPages:       p.TotalPages(),
			NumberOfElements: p.NumberOfElements(),
			First:            p.First(),
			Last:             p.Last(),
			HasNext:          p.HasNext(),
			HasPrevious:      p.HasPrevious(),
			Empty:            p.Empty(),
			Sort:             sort,
		},
	}
}
