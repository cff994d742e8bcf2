package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/kerja-workspace/internal/constants"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{"defaults", "", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"explicit", "?page=3&limit=10", PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{"limit above max", "?limit=500", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"garbage", "?page=abc&limit=-4", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/activities"+tt.query, nil)

			assert.Equal(t, tt.want, GetPaginationParams(c))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, NewPaginationParams(2, 2))
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, PaginationResponse{Page: 2, Limit: 2, Total: 5}, meta)

	page, _ = Paginate(items, NewPaginationParams(3, 2))
	assert.Equal(t, []int{5}, page)

	page, meta = Paginate(items, NewPaginationParams(9, 2))
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 5, meta.Total)
}
