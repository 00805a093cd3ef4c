package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается при попытке доступа к чужому тенанту
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrBookingFinalized возвращается при попытке изменить статус
	// бронирования в терминальном состоянии (cancelled, completed)
	ErrBookingFinalized = errors.New("bookings: booking is in a terminal status")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
