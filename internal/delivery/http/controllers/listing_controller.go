package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"elevatecart/internal/delivery/http/helpers"
	"elevatecart/internal/domain"
)

// ListPageListingsSuccessResponse is the success response envelope for GET /pages/{pageID}/listings (200).
type ListPageListingsSuccessResponse struct {
	Data  []*domain.GroupListing `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ListingController struct {
	Logger  *slog.Logger
	Pages   domain.PageRepository
	Service domain.ListingService
}

func NewListingController(logger *slog.Logger, pages domain.PageRepository, svc domain.ListingService) *ListingController {
	return &ListingController{
		Logger:  logger,
		Pages:   pages,
		Service: svc,
	}
}

// ListPageListings godoc
// @Summary List the course groups of a page
// @Description Fetches the page's catalog once and returns one entry per configured group, in configuration order. Groups with no matching program instances carry the page's no-courses message. A catalog that cannot be fetched or parsed yields the message for every group, not an error.
// @Tags listings
// @Produce json
// @Param pageID path string true "Page ID"
// @Success 200 {object} controllers.ListPageListingsSuccessResponse "data is an array of group listings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /pages/{pageID}/listings [get]
func (c *ListingController) ListPageListings(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("pageID")
	if pageID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing pageID")
		return
	}
	page, err := c.Pages.GetByID(r.Context(), pageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "page not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	listings, err := c.Service.ListGroups(r.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if listings == nil {
		listings = []*domain.GroupListing{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listings)
}
