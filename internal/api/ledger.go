package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	model "github.com/glkeru/kvote/internal/models"
	services "github.com/glkeru/kvote/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	router *mux.Router
	iap    *services.IAPService
	points *services.PointsService
	logger *zap.Logger
}

func NewLedgerHandler(iap *services.IAPService, points *services.PointsService, auth *TokenVerifier, logger *zap.Logger) *LedgerHandler {
	router := mux.NewRouter()
	handler := &LedgerHandler{router, iap, points, logger}

	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(MiddlewareAuth(auth))
	api.HandleFunc("/verifyPurchase", handler.VerifyPurchaseHandler).Methods(http.MethodPost)
	api.HandleFunc("/verifySubscription", handler.VerifySubscriptionHandler).Methods(http.MethodPost)
	api.HandleFunc("/points", handler.GetPointsHandler).Methods(http.MethodGet)
	api.HandleFunc("/pointHistory", handler.GetPointHistoryHandler).Methods(http.MethodGet)

	return handler
}

func (h *LedgerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *LedgerHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// ответы в формате {success, data} / {success, error}
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, apiResponse{Success: false, Error: msg})
}

// таксономия ошибок -> HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "Transaction already processed")
	case errors.Is(err, model.ErrUnknownProduct):
		writeError(w, http.StatusBadRequest, "Invalid product ID")
	case errors.Is(err, model.ErrInvalidReceipt):
		writeError(w, http.StatusBadRequest, "Invalid receipt")
	case errors.Is(err, model.ErrInsufficient):
		writeError(w, http.StatusBadRequest, "Insufficient points")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

type verifyPurchaseRequest struct {
	ReceiptData   string `json:"receiptData"`
	ProductID     string `json:"productId"`
	TransactionID string `json:"transactionId"`
}

// Покупка баллов
func (h *LedgerHandler) VerifyPurchaseHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.Log("Get request body", "VerifyPurchaseHandler", err)
		writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer r.Body.Close()

	req := verifyPurchaseRequest{}
	err = json.Unmarshal(body, &req)
	if err != nil {
		h.Log("Unmarshal", "VerifyPurchaseHandler", err)
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if req.ReceiptData == "" || req.ProductID == "" || req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	granted, newBalance, err := h.iap.VerifyPurchase(r.Context(), UserID(r), req.ReceiptData, req.ProductID, req.TransactionID)
	if err != nil {
		h.Log("Verify purchase", "VerifyPurchaseHandler", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: map[string]any{
			"pointsGranted": granted,
			"newBalance":    newBalance,
			"transactionId": req.TransactionID,
		},
	})
}

// Подписка
func (h *LedgerHandler) VerifySubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.Log("Get request body", "VerifySubscriptionHandler", err)
		writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer r.Body.Close()

	req := verifyPurchaseRequest{}
	err = json.Unmarshal(body, &req)
	if err != nil {
		h.Log("Unmarshal", "VerifySubscriptionHandler", err)
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if req.ReceiptData == "" || req.ProductID == "" || req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	grant, err := h.iap.VerifySubscription(r.Context(), UserID(r), req.ReceiptData, req.ProductID, req.TransactionID)
	if err != nil {
		h.Log("Verify subscription", "VerifySubscriptionHandler", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"isPremium":     grant.Premium,
		"expiresAt":     grant.ExpiresAt.UTC().Format(time.RFC3339),
		"productId":     grant.ProductID,
		"pointsGranted": grant.Points,
		"isFirstMonth":  grant.FirstMonth,
	})
}

// Баланс
func (h *LedgerHandler) GetPointsHandler(w http.ResponseWriter, r *http.Request) {
	points, premium, err := h.points.GetBalance(r.Context(), UserID(r))
	if err != nil {
		h.Log("Get balance", "GetPointsHandler", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: map[string]any{
			"points":    points,
			"isPremium": premium,
		},
	})
}

// История транзакций
func (h *LedgerHandler) GetPointHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	tnxs, total, err := h.points.GetHistory(r.Context(), UserID(r), limit, offset)
	if err != nil {
		h.Log("Get history", "GetPointHistoryHandler", err)
		writeServiceError(w, err)
		return
	}

	type tnxData struct {
		ID        string `json:"id"`
		Points    int64  `json:"points"`
		Type      string `json:"type"`
		Reason    string `json:"reason"`
		CreatedAt string `json:"createdAt"`
	}
	transactions := make([]tnxData, len(tnxs))
	for i, t := range tnxs {
		transactions[i] = tnxData{
			ID:        t.UUID.String(),
			Points:    t.Points,
			Type:      t.TypeTnx,
			Reason:    t.Reason,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: map[string]any{
			"transactions": transactions,
			"totalCount":   total,
		},
	})
}
