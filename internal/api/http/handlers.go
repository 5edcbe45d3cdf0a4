package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/service"
	"github.com/denyszaritskyi/comand-work/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders    service.OrderServiceInterface
	Dishes    service.DishServiceInterface
	Board     *service.BoardService
	History   service.HistoryServiceInterface
	Analytics service.AnalyticsServiceInterface
	QR        service.QRGenerator
}

func NewHandler(
	orderSvc service.OrderServiceInterface,
	dishSvc service.DishServiceInterface,
	board *service.BoardService,
	history service.HistoryServiceInterface,
	analytics service.AnalyticsServiceInterface,
	qr service.QRGenerator,
) *Handler {
	return &Handler{
		Orders:    orderSvc,
		Dishes:    dishSvc,
		Board:     board,
		History:   history,
		Analytics: analytics,
		QR:        qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/board", h.getBoard).Methods("GET")

	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/dishes", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/sessions/{id}/orders", h.getSessionOrders).Methods("GET")

	r.HandleFunc("/api/analytics/summary", h.getAnalyticsSummary).Methods("GET")
	r.HandleFunc("/api/analytics/top", h.getTopDishes).Methods("GET")

	r.HandleFunc("/api/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.Place(r.Context(), &order); err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if sessionID := r.URL.Query().Get("session"); sessionID != "" {
		// the order is already persisted; the history association is advisory
		if err := h.History.Record(r.Context(), sessionID, order.ID); err != nil {
			log.Printf("[tableside] record session %s order %s: %v", sessionID, order.ID, err)
		}
	}

	writeJSON(w, http.StatusCreated, order)
}

type statusChangeRequest struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	PaidItems []string           `json:"paidItems,omitempty"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.ApplyStatusChange(r.Context(), req.ID, req.Status, req.PaidItems)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Board.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Create(r.Context(), &dish); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Update(r.Context(), &dish); err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrMissingDishID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSessionOrders(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	all, err := h.Orders.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	orders, err := h.History.Orders(r.Context(), sessionID, all)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("unpaid") == "1" {
		writeJSON(w, http.StatusOK, map[string]bool{"hasUnpaid": service.HasUnpaidOrders(orders)})
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	// default window: the current month
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "Invalid from date", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "Invalid to date", http.StatusBadRequest)
			return
		}
		to = parsed.Add(24*time.Hour - time.Millisecond)
	}

	summary, err := h.Analytics.Summary(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	top, err := h.Analytics.TopDishes(r.Context(), r.URL.Query().Get("date"), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if top == nil {
		top = []storage.DishCount{}
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	qr, err := h.QR.Generate(table)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
