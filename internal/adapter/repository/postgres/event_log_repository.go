package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

const eventLogColumns = `id, event_category, event_type, action_type, event_detail,
	user_id, resource_id, ip_address, trace_id, service_name, created_at`

// sortColumns whitelists the sortable properties and maps them to columns.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"eventCategory": "event_category",
	"eventType":     "event_type",
	"actionType":    "action_type",
	"serviceName":   "service_name",
	"resourceId":    "resource_id",
	"userId":        "user_id",
}

// textSortColumns are the columns where an ignore-case sort applies lower().
var textSortColumns = map[string]bool{
	"event_category": true,
	"event_type":     true,
	"action_type":    true,
	"service_name":   true,
	"resource_id":    true,
}

// EventLogRepository implements domain.EventLogRepository and
// domain.EventLogQueryRepository against the p_event_log table.
type EventLogRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewEventLogRepository creates the generic event log store.
func NewEventLogRepository(db *sql.DB, logger *slog.Logger) *EventLogRepository {
	return &EventLogRepository{db: db, logger: logger.With("component", "event_log_repository")}
}

// Save inserts the log record. The caller has already assigned identity and
// timestamp; there is no upsert path.
func (r *EventLogRepository) Save(ctx context.Context, l domain.EventLog) error {
	const q = `INSERT INTO p_event_log (` + eventLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, q,
		l.LogID,
		l.EventCategory,
		l.EventType,
		l.ActionType,
		nullBytes(l.EventDetail),
		l.UserID,
		nullString(l.ResourceID),
		nullString(l.IPAddress),
		nullString(l.TraceID),
		l.ServiceName,
		l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event log: %w", err)
	}
	return nil
}

// FindByID returns the log with the given id, or nil when no row matches.
func (r *EventLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventLog, error) {
	q := `SELECT ` + eventLogColumns + ` FROM p_event_log WHERE id = $1`

	l, err := scanEventLog(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query event log by id: %w", err)
	}
	return l, nil
}

// FindList runs the filtered page query and its structurally identical count
// query against the same predicate set.
func (r *EventLogRepository) FindList(ctx context.Context, cond domain.EventLogSearchCondition, req domain.PageRequest) (domain.Page[domain.EventLog], error) {
	where, args := buildWhere(cond)
	orderBy, applied := buildOrderBy(req.Sort)

	listQuery := fmt.Sprintf(`SELECT `+eventLogColumns+` FROM p_event_log%s%s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), req.Size, req.Offset())

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return domain.Page[domain.EventLog]{}, fmt.Errorf("query event logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.EventLog
	for rows.Next() {
		l, err := scanEventLog(rows)
		if err != nil {
			return domain.Page[domain.EventLog]{}, fmt.Errorf("scan event log: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.EventLog]{}, err
	}

	countQuery := `SELECT COUNT(*) FROM p_event_log` + where

	// An absent count is coerced to zero rather than treated as an error.
	var total sql.NullInt64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return domain.Page[domain.EventLog]{}, fmt.Errorf("count event logs: %w", err)
		}
	}

	return domain.Page[domain.EventLog]{
		Content:       logs,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total.Int64,
		Sort:          applied,
	}, nil
}

// buildWhere folds the independently-constructed predicates of the search
// condition into one AND clause. Absent fields contribute no predicate; the
// date range applies only when both bounds are present.
func buildWhere(cond domain.EventLogSearchCondition) (string, []any) {
	var preds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if cond.EventCategory != nil {
		preds = append(preds, "event_category = "+arg(*cond.EventCategory))
	}
	if cond.EventType != nil {
		preds = append(preds, "event_type = "+arg(*cond.EventType))
	}
	if cond.ActionType != nil {
		preds = append(preds, "action_type = "+arg(*cond.ActionType))
	}
	if cond.UserID != nil {
		preds = append(preds, "user_id = "+arg(*cond.UserID))
	}
	if cond.ServiceName != nil {
		preds = append(preds, "service_name = "+arg(*cond.ServiceName))
	}
	if cond.From != nil && cond.To != nil {
		preds = append(preds, fmt.Sprintf("created_at BETWEEN %s AND %s", arg(*cond.From), arg(*cond.To)))
	}
	if kw := strings.TrimSpace(cond.Keyword); kw != "" {
		p := arg("%" + kw + "%")
		preds = append(preds, fmt.Sprintf(
			"(event_category ILIKE %[1]s OR event_type ILIKE %[1]s OR action_type ILIKE %[1]s OR resource_id ILIKE %[1]s OR service_name ILIKE %[1]s)", p))
	}

	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), args
}

// buildOrderBy maps the requested sort descriptors onto whitelisted columns
// and returns the descriptors that were actually applied. Unknown properties
// are dropped. With no usable descriptor the newest logs come first.
func buildOrderBy(sort []domain.SortOrder) (string, []domain.SortOrder) {
	var terms []string
	var applied []domain.SortOrder

	for _, o := range sort {
		col, ok := sortColumns[o.Property]
		if !ok {
			continue
		}
		expr := col
		ignoreCase := o.IgnoreCase && textSortColumns[col]
		if ignoreCase {
			expr = "lower(" + col + ")"
		}
		dir := "ASC"
		if o.Direction == domain.SortDesc {
			dir = "DESC"
		}
		terms = append(terms, expr+" "+dir)
		applied = append(applied, domain.SortOrder{Property: o.Property, Direction: o.Direction, IgnoreCase: ignoreCase})
	}

	if len(terms) == 0 {
		return " ORDER BY created_at DESC", []domain.SortOrder{{Property: "createdAt", Direction: domain.SortDesc}}
	}
	return " ORDER BY " + strings.Join(terms, ", "), applied
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventLog(row rowScanner) (*domain.EventLog, error) {
	var (
		l          domain.EventLog
		detail     []byte
		userID     uuid.NullUUID
		resourceID sql.NullString
		ipAddress  sql.NullString
		traceID    sql.NullString
	)

	err := row.Scan(
		&l.LogID,
		&l.EventCategory,
		&l.EventType,
		&l.ActionType,
		&detail,
		&userID,
		&resourceID,
		&ipAddress,
		&traceID,
		&l.ServiceName,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.EventDetail = detail
	if userID.Valid {
		l.UserID = &userID.UUID
	}
	l.ResourceID = resourceID.String
	l.IPAddress = ipAddress.String
	l.TraceID = traceID.String

	return &l, nil
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
