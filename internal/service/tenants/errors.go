package tenants

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenants: tenant not found")

	// ErrTenantExists возвращается, когда slug или email уже заняты
	ErrTenantExists = errors.New("tenants: slug or email already in use")

	// ErrAccessDenied возвращается при попытке изменить чужого тенанта
	// или при недостаточной роли
	ErrAccessDenied = errors.New("tenants: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tenants: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tenants: internal error")
)
