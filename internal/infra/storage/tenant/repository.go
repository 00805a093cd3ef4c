package tenant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/agendahub/TenantBookingService/internal/domain"
	"github.com/agendahub/TenantBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL "unique_violation"
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с тенантами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового тенанта
// Уникальность slug и email обеспечивается ограничениями БД;
// нарушение транслируется в ErrTenantExists
func (r *Repository) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	servicesJSON, err := json.Marshal(t.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrBuildQuery, err)
	}

	theme := t.Theme
	if theme == nil {
		theme = json.RawMessage("{}")
	}

	query, args, err := psqlbuilder.Insert("tenants").
		Columns(
			"slug",
			"name",
			"theme",
			"whatsapp",
			"services",
			"pix_key",
			"email",
			"password_hash",
			"work_start",
			"work_end",
			"break_start",
			"break_end",
		).
		Values(
			t.Slug,
			t.Name,
			[]byte(theme),
			t.Whatsapp,
			servicesJSON,
			t.PixKey,
			t.Email,
			t.PasswordHash,
			t.WorkStart,
			t.WorkEnd,
			nullIfEmpty(t.BreakStart),
			nullIfEmpty(t.BreakEnd),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrTenantExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetBySlug получает тенанта по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query, args, err := tenantSelect().
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(r.db.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// GetByEmail получает тенанта по email владельца
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	query, args, err := tenantSelect().
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(r.db.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// List возвращает каталог тенантов (slug, name) по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Tenant, error) {
	query, args, err := psqlbuilder.Select("slug", "name").
		From("tenants").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.Slug, &t.Name); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tenants, nil
}

// UpdateConfig обновляет конфигурацию тенанта
// Credential-поля (email, password_hash) этим методом не изменяются
func (r *Repository) UpdateConfig(ctx context.Context, t *domain.Tenant) error {
	servicesJSON, err := json.Marshal(t.Services)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - marshal services: %v", ErrBuildQuery, err)
	}

	theme := t.Theme
	if theme == nil {
		theme = json.RawMessage("{}")
	}

	query, args, err := psqlbuilder.Update("tenants").
		Set("name", t.Name).
		Set("theme", []byte(theme)).
		Set("whatsapp", t.Whatsapp).
		Set("services", servicesJSON).
		Set("pix_key", t.PixKey).
		Set("work_start", t.WorkStart).
		Set("work_end", t.WorkEnd).
		Set("break_start", nullIfEmpty(t.BreakStart)).
		Set("break_end", nullIfEmpty(t.BreakEnd)).
		Where(squirrel.Eq{"slug": t.Slug}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// tenantSelect базовый SELECT со всеми колонками тенанта
func tenantSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"theme",
		"whatsapp",
		"services",
		"pix_key",
		"email",
		"password_hash",
		"work_start",
		"work_end",
		"break_start",
		"break_end",
		"created_at",
	).From("tenants")
}

// scanTenant сканирует одну строку тенанта
func (r *Repository) scanTenant(row *sql.Row, method string) (*domain.Tenant, error) {
	var t domain.Tenant
	var theme, services []byte
	var whatsapp, pixKey, workStart, workEnd, breakStart, breakEnd sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Slug,
		&t.Name,
		&theme,
		&whatsapp,
		&services,
		&pixKey,
		&t.Email,
		&t.PasswordHash,
		&workStart,
		&workEnd,
		&breakStart,
		&breakEnd,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, method, err)
	}

	t.Theme = json.RawMessage(theme)
	t.Whatsapp = whatsapp.String
	t.PixKey = pixKey.String
	t.WorkStart = workStart.String
	t.WorkEnd = workEnd.String
	t.BreakStart = breakStart.String
	t.BreakEnd = breakEnd.String
	t.CreatedAt = createdAt.Time

	if len(services) > 0 {
		if err := json.Unmarshal(services, &t.Services); err != nil {
			return nil, fmt.Errorf("%w: %s - unmarshal services: %v", ErrScanRow, method, err)
		}
	}

	return &t, nil
}

// nullIfEmpty преобразует пустую строку в NULL
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
