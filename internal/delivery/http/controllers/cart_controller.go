package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"elevatecart/internal/delivery/http/helpers"
	"elevatecart/internal/delivery/http/middleware"
	"elevatecart/internal/domain"
)

// Notices shown to the visitor after a cart action.
const (
	NoticeAdded     = "Program instance added to cart"
	NoticeDuplicate = "Program instance is already in your cart"
	NoticeRemoved   = "Program instance removed from cart"
	NoticeNotInCart = "Program instance is not in your cart"
	NoticeEmptied   = "Cart is now empty"
)

// AddCartItemRequest is the request body for POST /cart/items.
type AddCartItemRequest struct {
	PageURL  string          `json:"page_url"`
	Item     CartItemRequest `json:"item"`
	Waitlist bool            `json:"waitlist"`
}

// CartItemRequest is the snapshot of a listed program instance to add.
type CartItemRequest struct {
	InstanceObjectID  string           `json:"instance_object_id"`
	ProgramInstanceID string           `json:"program_instance_id"`
	Title             string           `json:"title"`
	Fee               float64          `json:"fee"`
	Sections          []domain.Section `json:"sections"`
}

// Validate implements Validator.
func (c AddCartItemRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.PageURL) == "" {
		errs = append(errs, "page_url is required")
	}
	if strings.TrimSpace(c.Item.InstanceObjectID) == "" {
		errs = append(errs, "item.instance_object_id is required")
	}
	if c.Item.Fee < 0 {
		errs = append(errs, "item.fee must not be negative")
	}
	return errs
}

// CartSuccessResponse is the success response envelope for cart endpoints (200).
type CartSuccessResponse struct {
	Data   domain.CartSnapshot `json:"data"`
	Error  *helpers.APIError   `json:"error"`
	Notice string              `json:"notice,omitempty"`
}

type CartController struct {
	Logger  *slog.Logger
	Service domain.CartService
}

func NewCartController(logger *slog.Logger, svc domain.CartService) *CartController {
	return &CartController{
		Logger:  logger,
		Service: svc,
	}
}

// scope resolves the cart scope from the session and page_url. It writes a 400
// and returns false when either is unusable.
func (c *CartController) scope(w http.ResponseWriter, r *http.Request, pageURL string) (domain.CartScope, bool) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())
	scope, err := domain.NewCartScope(sessionID, pageURL)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return domain.CartScope{}, false
	}
	return scope, true
}

// GetCart godoc
// @Summary Get the cart
// @Description Returns the visitor's cart for the page location, with total and checkout link.
// @Tags cart
// @Produce json
// @Param page_url query string true "Absolute URL of the page hosting the cart"
// @Success 200 {object} controllers.CartSuccessResponse "data contains the cart snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cart [get]
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	scope, ok := c.scope(w, r, r.URL.Query().Get("page_url"))
	if !ok {
		return
	}
	snap, err := c.Service.Snapshot(r.Context(), scope)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, snap)
}

// AddCartItem godoc
// @Summary Add a program instance to the cart
// @Description Adds the item unless an item with the same instance_object_id is already in the cart. With waitlist=true the item is stored with fee 0 and flagged as a waitlist addition.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Page URL, item snapshot and waitlist flag"
// @Success 200 {object} controllers.CartSuccessResponse "data contains the cart snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_item"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cart/items [post]
func (c *CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	scope, ok := c.scope(w, r, req.PageURL)
	if !ok {
		return
	}
	item := domain.CartItem{
		InstanceObjectID:  req.Item.InstanceObjectID,
		ProgramInstanceID: req.Item.ProgramInstanceID,
		Title:             req.Item.Title,
		Fee:               req.Item.Fee,
		Sections:          req.Item.Sections,
	}
	snap, err := c.Service.Add(r.Context(), scope, item, req.Waitlist)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateItem):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateItem, NoticeDuplicate)
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONNotice(w, http.StatusOK, snap, NoticeAdded)
}

// RemoveCartItem godoc
// @Summary Remove a program instance from the cart
// @Tags cart
// @Produce json
// @Param objectID path string true "Program instance object id"
// @Param page_url query string true "Absolute URL of the page hosting the cart"
// @Success 200 {object} controllers.CartSuccessResponse "data contains the cart snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cart/items/{objectID} [delete]
func (c *CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	objectID := r.PathValue("objectID")
	if objectID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing objectID")
		return
	}
	scope, ok := c.scope(w, r, r.URL.Query().Get("page_url"))
	if !ok {
		return
	}
	snap, err := c.Service.Remove(r.Context(), scope, objectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, NoticeNotInCart)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONNotice(w, http.StatusOK, snap, NoticeRemoved)
}

// EmptyCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param page_url query string true "Absolute URL of the page hosting the cart"
// @Success 200 {object} controllers.CartSuccessResponse "data contains the empty cart"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cart [delete]
func (c *CartController) EmptyCart(w http.ResponseWriter, r *http.Request) {
	scope, ok := c.scope(w, r, r.URL.Query().Get("page_url"))
	if !ok {
		return
	}
	snap, err := c.Service.Empty(r.Context(), scope)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONNotice(w, http.StatusOK, snap, NoticeEmptied)
}
