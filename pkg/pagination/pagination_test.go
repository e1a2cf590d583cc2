package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftbill/swiftbill-api/pkg/pagination"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      pagination.Params
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults applied", params: pagination.Params{}, wantPage: 1, wantPerPage: 15},
		{name: "negative page clamped", params: pagination.Params{Page: -3, PerPage: 10}, wantPage: 1, wantPerPage: 10},
		{name: "per_page capped at 100", params: pagination.Params{Page: 2, PerPage: 500}, wantPage: 2, wantPerPage: 100},
		{name: "limit aliases per_page", params: pagination.Params{Page: 1, Limit: 25}, wantPage: 1, wantPerPage: 25},
		{name: "limit wins over per_page", params: pagination.Params{Page: 1, PerPage: 10, Limit: 30}, wantPage: 1, wantPerPage: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPerPage, tt.params.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	p := pagination.Params{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestNew(t *testing.T) {
	pag := pagination.New(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := pagination.New(3, 15, 31)
	assert.False(t, last.HasNext)

	empty := pagination.New(1, 15, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
