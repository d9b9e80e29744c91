package routes

import (
	"net/http"

	"tradehub/contact"
	"tradehub/live"
	"tradehub/middleware"
	"tradehub/orders"
	"tradehub/products"
	"tradehub/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/images/*filepath", http.Dir("static/productpic"))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	// httprouter cannot mix a static child with :slug, so "featured" is
	// dispatched off the param route.
	router.GET("/api/products/:slug", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if ps.ByName("slug") == "featured" {
			products.GetFeaturedProducts(w, r, ps)
			return
		}
		products.GetProduct(w, r, ps)
	})
	router.POST("/api/products", rl.Limit(products.CreateProduct))
	router.PUT("/api/products/:slug", rl.Limit(products.EditProduct))
	router.DELETE("/api/products/:slug", rl.Limit(products.DeleteProduct))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	feed := live.FeedHandler(hub)
	router.POST("/api/orders", rl.Limit(middleware.Idempotent(orders.CreateOrder)))
	router.GET("/api/orders", orders.GetOrders)
	router.GET("/api/orders/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if ps.ByName("id") == "feed" {
			feed(w, r, ps)
			return
		}
		orders.GetOrder(w, r, ps)
	})
	router.GET("/api/orders/:id/invoice", orders.OrderInvoice)
	router.PUT("/api/orders/:id/status", rl.Limit(orders.UpdateOrderStatus))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.CreateMessage))
	router.GET("/api/contact", contact.GetMessages)
	router.PUT("/api/contact/:id/read", contact.MarkRead)
}
