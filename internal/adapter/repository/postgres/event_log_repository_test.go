package postgres

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

// newMockDB creates a sqlmock database with automatic cleanup and
// expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var eventLogRowColumns = []string{
	"id", "event_category", "event_type", "action_type", "event_detail",
	"user_id", "resource_id", "ip_address", "trace_id", "service_name", "created_at",
}

func strPtr(s string) *string { return &s }

func TestBuildWhere(t *testing.T) {
	t.Run("No Filters", func(t *testing.T) {
		where, args := buildWhere(domain.EventLogSearchCondition{})
		if where != "" || args != nil {
			t.Errorf("buildWhere() = %q, %v, want empty", where, args)
		}
	})

	t.Run("Single Field", func(t *testing.T) {
		where, args := buildWhere(domain.EventLogSearchCondition{EventCategory: strPtr("PAYMENT")})
		if where != " WHERE event_category = $1" {
			t.Errorf("unexpected where clause: %q", where)
		}
		if len(args) != 1 || args[0] != "PAYMENT" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Multiple Fields Are ANDed", func(t *testing.T) {
		where, args := buildWhere(domain.EventLogSearchCondition{
			EventType:   strPtr("PAYMENT_COMPLETED"),
			ServiceName: strPtr("payment-service"),
		})
		if where != " WHERE event_type = $1 AND service_name = $2" {
			t.Errorf("unexpected where clause: %q", where)
		}
		if len(args) != 2 {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Partial Date Range Is Ignored", func(t *testing.T) {
		from := time.Now().UTC()
		where, _ := buildWhere(domain.EventLogSearchCondition{From: &from})
		if strings.Contains(where, "created_at") {
			t.Errorf("lone lower bound must not filter, got %q", where)
		}
		to := from.Add(time.Hour)
		where, _ = buildWhere(domain.EventLogSearchCondition{To: &to})
		if strings.Contains(where, "created_at") {
			t.Errorf("lone upper bound must not filter, got %q", where)
		}
	})

	t.Run("Full Date Range", func(t *testing.T) {
		from := time.Now().UTC()
		to := from.Add(time.Hour)
		where, args := buildWhere(domain.EventLogSearchCondition{From: &from, To: &to})
		if where != " WHERE created_at BETWEEN $1 AND $2" {
			t.Errorf("unexpected where clause: %q", where)
		}
		if len(args) != 2 {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Keyword Matches Five Columns With One Arg", func(t *testing.T) {
		where, args := buildWhere(domain.EventLogSearchCondition{Keyword: "  pay  "})
		want := " WHERE (event_category ILIKE $1 OR event_type ILIKE $1 OR action_type ILIKE $1 OR resource_id ILIKE $1 OR service_name ILIKE $1)"
		if where != want {
			t.Errorf("unexpected where clause: %q", where)
		}
		if len(args) != 1 || args[0] != "%pay%" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Blank Keyword Is Ignored", func(t *testing.T) {
		where, args := buildWhere(domain.EventLogSearchCondition{Keyword: "   "})
		if where != "" || args != nil {
			t.Errorf("blank keyword must not filter, got %q", where)
		}
	})

	t.Run("Placeholders Number Across Predicates", func(t *testing.T) {
		userID := uuid.New()
		where, args := buildWhere(domain.EventLogSearchCondition{
			ActionType: strPtr("CREATE"),
			UserID:     &userID,
			Keyword:    "ticket",
		})
		if !strings.Contains(where, "action_type = $1") ||
			!strings.Contains(where, "user_id = $2") ||
			!strings.Contains(where, "ILIKE $3") {
			t.Errorf("unexpected placeholder numbering: %q", where)
		}
		if len(args) != 3 {
			t.Errorf("unexpected args: %v", args)
		}
	})
}

func TestBuildOrderBy(t *testing.T) {
	t.Run("Default Sort", func(t *testing.T) {
		orderBy, applied := buildOrderBy(nil)
		if orderBy != " ORDER BY created_at DESC" {
			t.Errorf("unexpected order by: %q", orderBy)
		}
		if len(applied) != 1 || applied[0].Property != "createdAt" || applied[0].Direction != domain.SortDesc {
			t.Errorf("unexpected applied sort: %+v", applied)
		}
	})

	t.Run("Whitelisted Property", func(t *testing.T) {
		orderBy, applied := buildOrderBy([]domain.SortOrder{
			{Property: "serviceName", Direction: domain.SortAsc},
		})
		if orderBy != " ORDER BY service_name ASC" {
			t.Errorf("unexpected order by: %q", orderBy)
		}
		if len(applied) != 1 || applied[0].Property != "serviceName" {
			t.Errorf("unexpected applied sort: %+v", applied)
		}
	})

	t.Run("Unknown Property Falls Back To Default", func(t *testing.T) {
		orderBy, _ := buildOrderBy([]domain.SortOrder{
			{Property: "passwordHash", Direction: domain.SortAsc},
		})
		if orderBy != " ORDER BY created_at DESC" {
			t.Errorf("unknown property must be dropped, got %q", orderBy)
		}
	})

	t.Run("Ignore Case Applies Lower To Text Columns Only", func(t *testing.T) {
		orderBy, applied := buildOrderBy([]domain.SortOrder{
			{Property: "eventType", Direction: domain.SortAsc, IgnoreCase: true},
			{Property: "createdAt", Direction: domain.SortDesc, IgnoreCase: true},
		})
		if orderBy != " ORDER BY lower(event_type) ASC, created_at DESC" {
			t.Errorf("unexpected order by: %q", orderBy)
		}
		if !applied[0].IgnoreCase || applied[1].IgnoreCase {
			t.Errorf("unexpected applied ignore-case flags: %+v", applied)
		}
	})
}

func TestEventLogRepositorySave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventLogRepository(db, testLogger())

	userID := uuid.New()
	log := domain.EventLog{
		LogID:         uuid.New(),
		EventCategory: "PAYMENT",
		EventType:     "PAYMENT_COMPLETED",
		ActionType:    "UPDATE",
		EventDetail:   []byte(`{"amount":120000}`),
		UserID:        &userID,
		ResourceID:    "payment-42",
		ServiceName:   "payment-service",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO p_event_log").
		WithArgs(log.LogID, log.EventCategory, log.EventType, log.ActionType,
			[]byte(`{"amount":120000}`), &userID, nullString("payment-42"),
			nullString(""), nullString(""), log.ServiceName, log.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), log); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestEventLogRepositoryFindByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventLogRepository(db, testLogger())

		id := uuid.New()
		userID := uuid.New()
		now := time.Now().UTC()
		rows := sqlmock.NewRows(eventLogRowColumns).AddRow(
			id.String(), "TICKET", "TICKET_ISSUED", "CREATE", []byte(`{"seat":"A1"}`),
			userID.String(), "ticket-7", "10.0.0.5", "trace-1", "ticket-service", now,
		)
		mock.ExpectQuery("SELECT .+ FROM p_event_log WHERE id = \\$1").
			WithArgs(id).WillReturnRows(rows)

		got, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got == nil {
			t.Fatal("FindByID() returned nil for an existing row")
		}
		if got.LogID != id || got.EventType != "TICKET_ISSUED" || got.ResourceID != "ticket-7" {
			t.Errorf("unexpected log: %+v", got)
		}
		if got.UserID == nil || *got.UserID != userID {
			t.Errorf("unexpected user id: %v", got.UserID)
		}
		if string(got.EventDetail) != `{"seat":"A1"}` {
			t.Errorf("unexpected detail: %s", got.EventDetail)
		}
		if !got.CreatedAt.Equal(now) {
			t.Errorf("unexpected created at: %v", got.CreatedAt)
		}
	})

	t.Run("Not Found Returns Nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventLogRepository(db, testLogger())

		id := uuid.New()
		mock.ExpectQuery("SELECT .+ FROM p_event_log WHERE id = \\$1").
			WithArgs(id).WillReturnRows(sqlmock.NewRows(eventLogRowColumns))

		got, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got != nil {
			t.Errorf("FindByID() = %+v, want nil", got)
		}
	})
}

func TestEventLogRepositoryFindList(t *testing.T) {
	t.Run("Unfiltered Page", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventLogRepository(db, testLogger())

		now := time.Now().UTC()
		rows := sqlmock.NewRows(eventLogRowColumns).
			AddRow(uuid.New().String(), "AUTH", "USER_LOGIN", "LOGIN", nil,
				nil, nil, nil, nil, "auth-service", now).
			AddRow(uuid.New().String(), "USER", "USER_CREATED", "CREATE", nil,
				nil, nil, nil, nil, "user-service", now.Add(-time.Minute))

		mock.ExpectQuery("SELECT .+ FROM p_event_log ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(20, 0).WillReturnRows(rows)
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM p_event_log").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		page, err := repo.FindList(context.Background(), domain.EventLogSearchCondition{}, domain.PageRequest{Page: 0, Size: 20})
		if err != nil {
			t.Fatalf("FindList() error = %v", err)
		}
		if len(page.Content) != 2 {
			t.Fatalf("len(Content) = %d, want 2", len(page.Content))
		}
		if page.TotalElements != 42 {
			t.Errorf("TotalElements = %d, want 42", page.TotalElements)
		}
		if len(page.Sort) != 1 || page.Sort[0].Property != "createdAt" {
			t.Errorf("unexpected applied sort: %+v", page.Sort)
		}
	})

	t.Run("Filtered Page Shares Predicates With Count", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventLogRepository(db, testLogger())

		mock.ExpectQuery("SELECT .+ FROM p_event_log WHERE event_category = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs("PAYMENT", 10, 20).
			WillReturnRows(sqlmock.NewRows(eventLogRowColumns))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM p_event_log WHERE event_category = \\$1").
			WithArgs("PAYMENT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		page, err := repo.FindList(context.Background(),
			domain.EventLogSearchCondition{EventCategory: strPtr("PAYMENT")},
			domain.PageRequest{Page: 2, Size: 10})
		if err != nil {
			t.Fatalf("FindList() error = %v", err)
		}
		if !page.Empty() || page.TotalElements != 0 {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("Null Count Coerces To Zero", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventLogRepository(db, testLogger())

		mock.ExpectQuery("SELECT .+ FROM p_event_log ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(20, 0).WillReturnRows(sqlmock.NewRows(eventLogRowColumns))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM p_event_log").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(nil))

		page, err := repo.FindList(context.Background(), domain.EventLogSearchCondition{}, domain.PageRequest{Page: 0, Size: 20})
		if err != nil {
			t.Fatalf("FindList() error = %v", err)
		}
		if page.TotalElements != 0 {
			t.Errorf("TotalElements = %d, want 0", page.TotalElements)
		}
	})
}
