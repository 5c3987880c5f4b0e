package biz

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PageSize is the number of items on every paginated listing.
const PageSize = 12

// Page locates one page within a result set.
type Page struct {
	Number   int
	NumPages int
	Size     int
	Total    int64
}

// NewPage clamps the requested page number into [1, NumPages]. An empty
// result set still has one (empty) page.
func NewPage(total int64, requested int) Page {
	numPages := 1
	if total > 0 {
		numPages = int((total + PageSize - 1) / PageSize)
	}
	number := requested
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return Page{
		Number:   number,
		NumPages: numPages,
		Size:     PageSize,
		Total:    total,
	}
}

// ParsePageNumber reads a page query value; anything that is not an integer
// selects the first page. Integers beyond the int range saturate so that
// NewPage clamps them to the first or last page.
func ParsePageNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	return 1
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}
