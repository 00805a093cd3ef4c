package create_booking

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
//
// Проверяется только наличие полей: формат имени, телефона и
// принадлежность метки слота сетке тенанта не проверяются.
// Бронирование на метку вне сетки допустимо и не влияет на
// доступность остальных слотов
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenant slug is required", ErrInvalidInput)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	return nil
}
