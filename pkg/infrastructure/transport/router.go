package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

type Services struct {
	Auth     service.AuthService
	Users    service.UserService
	Products service.ProductService
	Cart     service.CartService
	Checkout service.CheckoutService
	Orders   service.OrderService
	Invoices service.InvoiceService
	Admin    service.AdminService
}

type Handler struct {
	services Services
	sessions model.SessionRepository
	logger   log.FieldLogger
}

func Router(services Services, sessions model.SessionRepository, logger log.FieldLogger) http.Handler {
	h := &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(h.loadSession)
	api.HandleFunc("/login", h.login).Methods(http.MethodPost)
	api.HandleFunc("/logout", h.requireRole(h.logout)).Methods(http.MethodPost)
	api.HandleFunc("/me", h.requireRole(h.me)).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/users", h.requireRole(h.createUser, model.RoleAdmin)).Methods(http.MethodPost)
	admin.HandleFunc("/users", h.requireRole(h.listUsers, model.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/products", h.requireRole(h.addProduct, model.RoleAdmin)).Methods(http.MethodPost)
	admin.HandleFunc("/overview", h.requireRole(h.overview, model.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/orders", h.requireRole(h.listOrders, model.RoleAdmin)).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderRef}/invoice", h.requireRole(h.invoice, model.RoleAdmin)).Methods(http.MethodGet)

	api.HandleFunc("/products", h.requireRole(h.listProducts, model.RoleUser)).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.requireRole(h.viewCart, model.RoleUser)).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.requireRole(h.clearCart, model.RoleUser)).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", h.requireRole(h.addToCart, model.RoleUser)).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{index:[0-9]+}", h.requireRole(h.setQuantity, model.RoleUser)).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{index:[0-9]+}", h.requireRole(h.removeFromCart, model.RoleUser)).Methods(http.MethodDelete)
	api.HandleFunc("/checkout", h.requireRole(h.checkout, model.RoleUser)).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.requireRole(h.myOrders, model.RoleUser)).Methods(http.MethodGet)

	return logMiddleware(logger, r)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(logger log.FieldLogger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		logger.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.String(),
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("handled request")
	})
}
