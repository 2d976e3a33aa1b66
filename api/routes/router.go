package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nataliebakery/storefront/api/controllers"
	cartcontrollers "github.com/nataliebakery/storefront/api/controllers/cart"
	"github.com/nataliebakery/storefront/api/middleware"
	cartsvc "github.com/nataliebakery/storefront/internal/cart"
	"github.com/nataliebakery/storefront/internal/catalog"
	checkoutsvc "github.com/nataliebakery/storefront/internal/checkout"
	"github.com/nataliebakery/storefront/pkg/config"
	"github.com/nataliebakery/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogClient *catalog.Client,
	cartStore *cartsvc.Store,
	checkoutService *checkoutsvc.Service,
	readiness map[string]controllers.Pinger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CartSession(cfg.Cart, logg))

		r.Get("/products", controllers.ListProducts(catalogClient, logg))
		r.Get("/products/{slug}", controllers.GetProduct(catalogClient, logg))
		r.Get("/categories", controllers.ListCategories(catalogClient, logg))
		r.Get("/cake-options", controllers.ListCakeOptions(catalogClient, logg))
		r.Get("/site-content", controllers.GetSiteContent(catalogClient, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartStore, logg))
			r.Delete("/", cartcontrollers.CartClear(cartStore, logg))
			r.Post("/items", cartcontrollers.CartAddItem(cartStore, catalogClient, logg))
			r.Patch("/items/{lineID}", cartcontrollers.CartUpdateItem(cartStore, logg))
			r.Delete("/items/{lineID}", cartcontrollers.CartRemoveItem(cartStore, logg))
		})

		r.Post("/checkout", controllers.Checkout(checkoutService, logg))
	})

	return r
}
