package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/adapter/api/dto"
	"github.com/Tickatch/log-service/internal/domain"
	"github.com/Tickatch/log-service/internal/usecase"
)

// EventLogHandler serves the generic event log HTTP surface.
type EventLogHandler struct {
	register usecase.EventLogRegisterUseCase
	query    usecase.EventLogQueryUseCase
	logger   *slog.Logger
}

// NewEventLogHandler creates the event log handler.
func NewEventLogHandler(register usecase.EventLogRegisterUseCase, query usecase.EventLogQueryUseCase, logger *slog.Logger) *EventLogHandler {
	return &EventLogHandler{
		register: register,
		query:    query,
		logger:   logger.With("component", "event_log_handler"),
	}
}

// Register handles POST /api/v1/event-logs.
func (h *EventLogHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterEventLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST_BODY", "request body is not valid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	if err := h.register.Register(r.Context(), req.ToCommand()); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// GetOne handles GET /api/v1/event-logs/{logId}.
func (h *EventLogHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	logID, err := uuid.Parse(chi.URLParam(r, "logId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LOG_ID", "logId must be a UUID")
		return
	}

	log, err := h.query.GetOne(r.Context(), logID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.NewEventLogResponse(log))
}

// GetList handles GET /api/v1/event-logs with optional filters, keyword,
// date range, paging and sorting.
func (h *EventLogHandler) GetList(w http.ResponseWriter, r *http.Request) {
	cond, err := parseSearchCondition(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	page, err := h.query.GetList(r.Context(), cond, parsePageRequest(r))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.NewPageResponse(page, dto.NewEventLogResponse))
}

func (h *EventLogHandler) writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		writeError(w, domainErr.Status, domainErr.Code, domainErr.Message)
		return
	}
	h.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func parseSearchCondition(r *http.Request) (domain.EventLogSearchCondition, error) {
	q := r.URL.Query()

	cond := domain.EventLogSearchCondition{
		EventCategory: optionalString(q.Get("eventCategory")),
		EventType:     optionalString(q.Get("eventType")),
		ActionType:    optionalString(q.Get("actionType")),
		ServiceName:   optionalString(q.Get("serviceName")),
		Keyword:       q.Get("keyword"),
	}

	if v := q.Get("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return cond, errors.New("userId must be a UUID")
		}
		cond.UserID = &id
	}

	var err error
	if cond.From, err = optionalTime(q.Get("from")); err != nil {
		return cond, errors.New("from must be an RFC 3339 timestamp")
	}
	if cond.To, err = optionalTime(q.Get("to")); err != nil {
		return cond, errors.New("to must be an RFC 3339 timestamp")
	}

	return cond, nil
}

func parsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()

	req := domain.PageRequest{}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		req.Size = v
	}

	// sort=property[,asc|desc], repeatable
	for _, raw := range q["sort"] {
		parts := strings.Split(raw, ",")
		prop := strings.TrimSpace(parts[0])
		if prop == "" {
			continue
		}
		order := domain.SortOrder{Property: prop, Direction: domain.SortAsc}
		if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			order.Direction = domain.SortDesc
		}
		req.Sort = append(req.Sort, order)
	}

	return req
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type apiResponse struct {
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Status: status, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiResponse{Status: status, Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
