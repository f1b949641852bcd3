package api

import (
	"encoding/json"
	"io"
	"net/http"

	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	services "github.com/glkeru/kvote/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Справочники для админки, все ручки только для админов
type MasterHandler struct {
	router *mux.Router
	db     interf.MasterStorage
	csv    *services.MasterService
	logger *zap.Logger
}

func NewMasterHandler(db interf.MasterStorage, csv *services.MasterService, auth *TokenVerifier, logger *zap.Logger) *MasterHandler {
	router := mux.NewRouter()
	handler := &MasterHandler{router, db, csv, logger}

	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	admin := router.PathPrefix("/master").Subrouter()
	admin.Use(MiddlewareAuth(auth))
	admin.Use(middlewareAdmin())

	admin.HandleFunc("/idols", handler.ListIdolsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/idols", handler.SaveIdolHandler).Methods(http.MethodPost)
	admin.HandleFunc("/idols/csv", handler.ExportIdolsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/idols/csv", handler.ImportIdolsHandler).Methods(http.MethodPost)
	admin.HandleFunc("/idols/{id}", handler.DeleteIdolHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/groups", handler.ListGroupsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/groups", handler.SaveGroupHandler).Methods(http.MethodPost)
	admin.HandleFunc("/groups/{id}", handler.DeleteGroupHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/apps", handler.ListAppsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/apps", handler.SaveAppHandler).Methods(http.MethodPost)
	admin.HandleFunc("/apps/{id}", handler.DeleteAppHandler).Methods(http.MethodDelete)

	return handler
}

func (h *MasterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *MasterHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func middlewareAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r) {
				writeError(w, http.StatusForbidden, "Forbidden: Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// --- idols ---

func (h *MasterHandler) ListIdolsHandler(w http.ResponseWriter, r *http.Request) {
	idols, err := h.db.ListIdols(r.Context())
	if err != nil {
		h.Log("DB get", "ListIdolsHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: idols})
}

func (h *MasterHandler) SaveIdolHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer r.Body.Close()

	idol := model.Idol{}
	err = json.Unmarshal(body, &idol)
	if err != nil {
		h.Log("Unmarshal", "SaveIdolHandler", err)
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if idol.Name == "" || idol.GroupName == "" {
		writeError(w, http.StatusBadRequest, "name and groupName are required")
		return
	}

	saved, err := h.db.SaveIdol(r.Context(), idol)
	if err != nil {
		h.Log("DB save", "SaveIdolHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: saved})
}

func (h *MasterHandler) DeleteIdolHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	err = h.db.DeleteIdol(r.Context(), id)
	if err != nil {
		h.Log("DB delete", "DeleteIdolHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// CSV импорт: валидные строки сохраняются, ошибки построчно в ответе
func (h *MasterHandler) ImportIdolsHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	imported, errs, err := h.csv.ImportIdolsCSV(r.Context(), r.Body)
	if err != nil {
		h.Log("CSV import", "ImportIdolsHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: map[string]any{
			"imported": imported,
			"errors":   errs,
		},
	})
}

func (h *MasterHandler) ExportIdolsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="idols.csv"`)
	err := h.csv.ExportIdolsCSV(r.Context(), w)
	if err != nil {
		h.Log("CSV export", "ExportIdolsHandler", err)
	}
}

// --- groups ---

func (h *MasterHandler) ListGroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := h.db.ListGroups(r.Context())
	if err != nil {
		h.Log("DB get", "ListGroupsHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: groups})
}

func (h *MasterHandler) SaveGroupHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer r.Body.Close()

	group := model.Group{}
	err = json.Unmarshal(body, &group)
	if err != nil {
		h.Log("Unmarshal", "SaveGroupHandler", err)
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if group.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	saved, err := h.db.SaveGroup(r.Context(), group)
	if err != nil {
		h.Log("DB save", "SaveGroupHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: saved})
}

func (h *MasterHandler) DeleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	err = h.db.DeleteGroup(r.Context(), id)
	if err != nil {
		h.Log("DB delete", "DeleteGroupHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// --- external apps ---

func (h *MasterHandler) ListAppsHandler(w http.ResponseWriter, r *http.Request) {
	apps, err := h.db.ListApps(r.Context())
	if err != nil {
		h.Log("DB get", "ListAppsHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: apps})
}

func (h *MasterHandler) SaveAppHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Body is empty")
		return
	}
	defer r.Body.Close()

	app := model.ExternalApp{}
	err = json.Unmarshal(body, &app)
	if err != nil {
		h.Log("Unmarshal", "SaveAppHandler", err)
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	if app.AppName == "" || app.AppURL == "" {
		writeError(w, http.StatusBadRequest, "appName and appUrl are required")
		return
	}

	saved, err := h.db.SaveApp(r.Context(), app)
	if err != nil {
		h.Log("DB save", "SaveAppHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: saved})
}

func (h *MasterHandler) DeleteAppHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	err = h.db.DeleteApp(r.Context(), id)
	if err != nil {
		h.Log("DB delete", "DeleteAppHandler", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}
