package get_tenant_stats

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("get_tenant_stats: tenant not found")

	// ErrAccessDenied возвращается при попытке доступа к чужому тенанту
	// или при недостаточной роли принципала
	ErrAccessDenied = errors.New("get_tenant_stats: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_tenant_stats: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_tenant_stats: internal error")
)
