package records

import (
	"errors"
	"fmt"
	"strconv"
)

const MaxPageSize = 100

var ErrInvalidPage = errors.New("invalid page")

type Page struct {
	Number int
	Size   int
}

// ParsePage reads the page number and size from the {page} and {size} route vars.
func ParsePage(vars map[string]string) (Page, error) {
	number, err := strconv.Atoi(vars["page"])
	if err != nil {
		return Page{}, fmt.Errorf("%w: parameter <page>", ErrInvalidPage)
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		return Page{}, fmt.Errorf("%w: parameter <size>", ErrInvalidPage)
	}

	p := Page{Number: number, Size: size}
	if err := p.Validate(); err != nil {
		return Page{}, err
	}
	return p, nil
}

func (p Page) Validate() error {
	if p.Number < 1 {
		return fmt.Errorf("%w: page has to be greater than 0", ErrInvalidPage)
	}
	if p.Size < 1 {
		return fmt.Errorf("%w: size has to be greater than 0", ErrInvalidPage)
	}
	if p.Size > MaxPageSize {
		return fmt.Errorf("%w: size has to be at most %d", ErrInvalidPage, MaxPageSize)
	}
	return nil
}

// Window returns the LIMIT and OFFSET for this page given the total row count.
// Pages past the end are clamped to the last full window.
func (p Page) Window(total int) (limit, offset int) {
	limit = p.Size
	offset = (p.Number - 1) * p.Size

	if total <= limit {
		return total, 0
	}
	if total-offset < limit {
		offset = total - limit
	}
	return limit, offset
}

func TotalPages(total, size int) int {
	if size < 1 || total < 1 {
		return 0
	}
	return (total + size - 1) / size
}

type PageResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"totalPages"`
}

func NewPageResult[T any](items []T, total int, p Page) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       p.Number,
		Size:       p.Size,
		TotalPages: TotalPages(total, p.Size),
	}
}
