package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Empty(t, filter.Search)
}

func TestParseFilterPageAndLimit(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("limit", "20")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 40, filter.Offset)
}

func TestParseFilterCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "5000")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterIgnoresGarbage(t *testing.T) {
	values := url.Values{}
	values.Set("page", "-2")
	values.Set("limit", "abc")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultLimit, filter.Limit)
}

func TestParseFilterSearchSortAndFilter(t *testing.T) {
	values := url.Values{}
	values.Set("search", "catan")
	values.Set("sort[created_at]", "desc")
	values.Set("sort[title]", "n'importe quoi")
	values.Set("filter[user_id]", "7")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "catan", filter.Search)
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "7", filter.Filter["user_id"])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(2, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
