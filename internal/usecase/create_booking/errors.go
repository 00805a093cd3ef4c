package create_booking

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("create_booking: tenant not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим
	// бронированием - единственный ожидаемый сбой при корректной
	// конкурентной работе; клиент может перечитать доступность
	// и повторить с другим слотом
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
