package team

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/agendahub/TenantBookingService/internal/domain"
	"github.com/agendahub/TenantBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL "unique_violation"
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с сотрудниками тенантов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	query, args, err := psqlbuilder.Insert("team_members").
		Columns(
			"tenant_slug",
			"email",
			"name",
			"password_hash",
			"role",
		).
		Values(
			m.TenantSlug,
			m.Email,
			m.Name,
			m.PasswordHash,
			m.Role,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time

	return m, nil
}

// GetByEmail получает сотрудника по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	query, args, err := memberSelect().
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.TeamMember
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.TenantSlug,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan member: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time

	return &m, nil
}

// ListByTenant получает всех сотрудников тенанта
func (r *Repository) ListByTenant(ctx context.Context, tenantSlug string) ([]*domain.TeamMember, error) {
	query, args, err := memberSelect().
		Where(squirrel.Eq{"tenant_slug": tenantSlug}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		var createdAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.TenantSlug,
			&m.Email,
			&m.Name,
			&m.PasswordHash,
			&m.Role,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTenant - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// Delete удаляет сотрудника
// Условие по tenant_slug гарантирует, что тенант не удалит чужого сотрудника
func (r *Repository) Delete(ctx context.Context, id int64, tenantSlug string) error {
	query, args, err := psqlbuilder.Delete("team_members").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"tenant_slug": tenantSlug}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// memberSelect базовый SELECT со всеми колонками сотрудника
func memberSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"tenant_slug",
		"email",
		"name",
		"password_hash",
		"role",
		"created_at",
	).From("team_members")
}
