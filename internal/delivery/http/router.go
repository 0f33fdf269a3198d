package http

import (
	"net/http"

	"elevatecart/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// withSession wraps handlers that need a cart session.
func NewRouter(
	listingController *controllers.ListingController,
	cartController *controllers.CartController,
	fetchLogController *controllers.FetchLogController,
	withSession func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", controllers.Health)

	// Listings
	mux.HandleFunc("GET /pages/{pageID}/listings", listingController.ListPageListings)

	// Cart (session-scoped)
	mux.HandleFunc("GET /cart", withSession(cartController.GetCart))
	mux.HandleFunc("DELETE /cart", withSession(cartController.EmptyCart))
	mux.HandleFunc("POST /cart/items", withSession(cartController.AddCartItem))
	mux.HandleFunc("DELETE /cart/items/{objectID}", withSession(cartController.RemoveCartItem))

	// Catalog fetch log
	mux.HandleFunc("GET /catalog/fetches", fetchLogController.ListCatalogFetches)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
