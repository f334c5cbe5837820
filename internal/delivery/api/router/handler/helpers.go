package handler

import (
	"localharvest/internal/delivery/api/response"
	"localharvest/internal/usecase"

	"github.com/labstack/echo/v4"
)

const idempotencyKeyHeader = "Idempotency-Key"

// pageQuery reads page and page_size; zero values fall back to the configured defaults.
func pageQuery(c echo.Context) (page, pageSize int, ok bool) {
	err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("page_size", &pageSize).
		BindError()

	return page, pageSize, err == nil
}

func pagination[T any](page *usecase.Page[T]) response.PaginationInfo {
	return response.PaginationInfo{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}
