package domain

// SortDirection is the order of a single sort property.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortOrder is one requested sort descriptor.
type SortOrder struct {
	Property   string
	Direction  SortDirection
	IgnoreCase bool
}

// PageRequest is a zero-based page selection with an ordered list of sort
// descriptors.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the row offset of the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one page of results plus the totals needed to derive pagination
// metadata.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	Sort          []SortOrder
}

// TotalPages returns the number of pages needed to hold all matching rows.
func (p Page[T]) TotalPages() int {
	if p.Size == 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// NumberOfElements returns the number of rows on this page.
func (p Page[T]) NumberOfElements() int {
	return len(p.Content)
}

// First reports whether this is the first page.
func (p Page[T]) First() bool {
	return p.Number == 0
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// Last reports whether this is the last page.
func (p Page[T]) Last() bool {
	return !p.HasNext()
}

// Empty reports whether this page holds no rows.
func (p Page[T]) Empty() bool {
	return len(p.Content) == 0
}

// MapPage converts the content of a page while keeping its metadata.
func MapPage[T, R any](p Page[T], mapper func(T) R) Page[R] {
	content := make([]R, len(p.Content))
	for i, item := range p.Content {
		content[i] = mapper(item)
	}
	return Page[R]{
		Content:       content,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		Sort:          p.Sort,
	}
}
