package routes

import (
	"net/http"

	"github.com/JBlizzard-sketch/Autoscraper/app/handlers"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/JBlizzard-sketch/Autoscraper/app/services"
	"github.com/JBlizzard-sketch/Autoscraper/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// Stores bundles the persistence backends the router wires handlers to.
// A MySQL deployment uses the gorm implementations, the in-memory
// deployment passes one MemoryStore for all three fields.
type Stores struct {
	Catalog repositories.CatalogStore
	Carts   repositories.CartStore
	Orders  repositories.OrderStore
	Blog    repositories.BlogStore
}

type Options struct {
	AppEnv   string
	CSRFKey  []byte
	Sessions *sessions.Store
	Logger   *zap.Logger
}

func NewRouter(stores Stores, opts Options) http.Handler {
	rnd := render.New()

	cartService := services.NewCartService(stores.Carts, opts.Logger)
	checkoutService := services.NewCheckoutService(stores.Carts, stores.Catalog, stores.Orders, opts.Logger)

	productHandler := handlers.NewProductHandler(stores.Catalog, rnd, opts.Logger)
	lookupHandler := handlers.NewLookupHandler(stores.Catalog, rnd, opts.Logger)
	cartHandler := handlers.NewCartHandler(cartService, opts.Sessions, rnd, opts.Logger)
	orderHandler := handlers.NewOrderHandler(checkoutService, opts.Sessions, rnd, opts.Logger)
	blogHandler := handlers.NewBlogHandler(stores.Blog, rnd, opts.Logger)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", productHandler.Detail).Methods("GET")
	api.HandleFunc("/search", productHandler.Search).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}/images", productHandler.Images).Methods("GET")

	api.HandleFunc("/categories", lookupHandler.Categories).Methods("GET")
	api.HandleFunc("/categories-with-counts", lookupHandler.CategoriesWithCounts).Methods("GET")
	api.HandleFunc("/categories/slug/{slug}", lookupHandler.CategoryBySlug).Methods("GET")
	api.HandleFunc("/categories/{id:[0-9]+}", lookupHandler.Category).Methods("GET")
	api.HandleFunc("/subcategories", lookupHandler.Subcategories).Methods("GET")
	api.HandleFunc("/brands", lookupHandler.Brands).Methods("GET")
	api.HandleFunc("/brands/{id:[0-9]+}", lookupHandler.Brand).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{id}", cartHandler.UpdateItem).Methods("PATCH")
	api.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")

	api.HandleFunc("/orders", orderHandler.Create).Methods("POST")
	api.HandleFunc("/orders", orderHandler.List).Methods("GET")
	api.HandleFunc("/orders/{id}", orderHandler.Detail).Methods("GET")

	api.HandleFunc("/blog/posts", blogHandler.Posts).Methods("GET")
	api.HandleFunc("/blog/posts/{slug}", blogHandler.Post).Methods("GET")
	api.HandleFunc("/blog/categories", blogHandler.Categories).Methods("GET")

	if opts.AppEnv == "production" {
		csrfMiddleware := csrf.Protect(opts.CSRFKey, csrf.Secure(true))
		return csrfMiddleware(router)
	}

	return router
}
