package repository

import (
	"strconv"
	"strings"
)

// PageSizes lists the page sizes a caller may request. Anything else falls
// back to DefaultPageSize.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used when no or an unrecognized page size is requested.
const DefaultPageSize = 10

// NormalizePageSize parses a raw page-size value from an untrusted source.
// Malformed or disallowed values silently fall back to the default.
func NormalizePageSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultPageSize
	}
	for _, size := range PageSizes {
		if n == size {
			return n
		}
	}
	return DefaultPageSize
}

// PageInfo describes one page of a larger result set.
type PageInfo struct {
	Number   int
	Size     int
	Total    int64
	LastPage int
}

func (p PageInfo) HasPrev() bool { return p.Number > 1 }
func (p PageInfo) HasNext() bool { return p.Number < p.LastPage }
func (p PageInfo) Prev() int     { return p.Number - 1 }
func (p PageInfo) Next() int     { return p.Number + 1 }

// pageInfo clamps a requested page number to the valid range for the given
// total: below 1 becomes 1, beyond the end becomes the last page.
func pageInfo(page, size int, total int64) PageInfo {
	last := int((total + int64(size) - 1) / int64(size))
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	return PageInfo{Number: page, Size: size, Total: total, LastPage: last}
}

func (p PageInfo) offset() int { return (p.Number - 1) * p.Size }
