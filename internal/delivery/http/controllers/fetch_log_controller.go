package controllers

import (
	"log/slog"
	"net/http"

	"elevatecart/internal/delivery/http/helpers"
	"elevatecart/internal/domain"
)

// ListCatalogFetchesResponse is the data payload for GET /catalog/fetches (200).
type ListCatalogFetchesResponse struct {
	Items      []*domain.FetchLog     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCatalogFetchesSuccessResponse is the success response envelope for GET /catalog/fetches (200).
type ListCatalogFetchesSuccessResponse struct {
	Data  ListCatalogFetchesResponse `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type FetchLogController struct {
	Logger *slog.Logger
	Repo   domain.FetchLogRepository
}

func NewFetchLogController(logger *slog.Logger, repo domain.FetchLogRepository) *FetchLogController {
	return &FetchLogController{
		Logger: logger,
		Repo:   repo,
	}
}

// ListCatalogFetches godoc
// @Summary List catalog fetches
// @Description Returns recorded catalog fetches, newest first, with their outcome and timing.
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListCatalogFetchesSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/fetches [get]
func (c *FetchLogController) ListCatalogFetches(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Repo.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.FetchLog{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCatalogFetchesResponse{Items: list, Pagination: meta})
}
