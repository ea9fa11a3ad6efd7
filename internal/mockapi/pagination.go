package mockapi

import (
	"net/http"
	"strconv"

	"github.com/courtbook/booking-client-go/internal/config"
)

type paginationParams struct {
	Page     int
	PageSize int
}

func parsePagination(r *http.Request) paginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > config.MaxPageSize {
		pageSize = config.DefaultPageSize
	}

	return paginationParams{Page: page, PageSize: pageSize}
}

// paged slices items into the requested page and wraps them in the backend's
// paged container shape.
func paged[T any](items []T, p paginationParams) map[string]any {
	total := len(items)
	totalPages := (total + p.PageSize - 1) / p.PageSize

	start := (p.Page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	return map[string]any{
		"items":      items[start:end],
		"total":      total,
		"page":       p.Page,
		"pageSize":   p.PageSize,
		"totalPages": totalPages,
	}
}
