// Package dealer serves cars from a balancer over HTTP.
package dealer

import (
	"encoding/json"
	"net/http"

	"car-factory/internal/factory"
	"car-factory/internal/logger"
	"car-factory/internal/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	OrderID string `json:"order_id"`
	Brand   string `json:"brand"`
	Info    string `json:"info"`
	// Routed is the balancer's total routed so far, read after this order was
	// built. Concurrent orders may already be included.
	Routed uint64 `json:"routed"`
}

type FactoriesResponse struct {
	Balancer  string          `json:"balancer"`
	Produced  uint64          `json:"produced"`
	Factories []factory.Share `json:"factories"`
}

type Handler struct {
	balancer factory.Balancer
	logger   logger.Logger
}

func NewHandler(balancer factory.Balancer, logger logger.Logger) *Handler {
	return &Handler{
		balancer: balancer,
		logger:   logger,
	}
}

// Register mounts the dealer routes on router.
func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/cars", h.OrderCar).Methods(http.MethodPost)
	router.HandleFunc("/factories", h.ListFactories).Methods(http.MethodGet)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) OrderCar(w http.ResponseWriter, r *http.Request) {
	c := h.balancer.RequestCar()

	orderID := middleware.RequestIDFromContext(r.Context())
	if orderID == "" {
		orderID = uuid.NewString()
	}

	h.logger.Info("Car ordered",
		zap.String("order_id", orderID),
		zap.String("brand", c.Brand().String()),
	)
	h.writeJSON(w, http.StatusCreated, OrderResponse{
		OrderID: orderID,
		Brand:   c.Brand().String(),
		Info:    c.Info(),
		Routed:  h.balancer.Produced(),
	})
}

func (h *Handler) ListFactories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, FactoriesResponse{
		Balancer:  h.balancer.Name(),
		Produced:  h.balancer.Produced(),
		Factories: h.balancer.Shares(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Error encoding response", zap.Error(err))
	}
}
