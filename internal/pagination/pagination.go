// Package pagination slices an ordered post listing into fixed-size pages.
package pagination

import (
	"strconv"

	"github.com/sergey-xx/Blogicum/internal/models"
)

// Page is one page of a listing plus the metadata templates need to
// build pager links.
type Page struct {
	Posts    []models.Post
	Number   int
	PerPage  int
	Total    int
	NumPages int
	HasNext  bool
	HasPrev  bool
}

// NextNumber is the following page's number, for pager links.
func (p Page) NextNumber() int { return p.Number + 1 }

// PrevNumber is the preceding page's number, for pager links.
func (p Page) PrevNumber() int { return p.Number - 1 }

// PageNumber parses a client-supplied page parameter. Anything that is
// not a positive integer means page 1.
func PageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the requested 1-based page of posts. A page past the
// end is an empty page, not an error. A page size below 1 is treated
// as 1 so a misconfigured size cannot panic the request path.
func Paginate(posts []models.Post, number, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	total := len(posts)
	numPages := (total + perPage - 1) / perPage
	if numPages < 1 {
		numPages = 1
	}

	page := Page{
		Number:   number,
		PerPage:  perPage,
		Total:    total,
		NumPages: numPages,
		HasNext:  number < numPages,
		HasPrev:  number > 1,
	}

	start := (number - 1) * perPage
	if start >= total {
		return page
	}
	end := start + perPage
	if end > total {
		end = total
	}
	page.Posts = posts[start:end]
	return page
}
