package team

import "errors"

var (
	// ErrAccessDenied возвращается, когда роль принципала не позволяет
	// управлять командой или тенантная область не совпадает
	ErrAccessDenied = errors.New("team: access denied")

	// ErrMemberNotFound возвращается, когда сотрудник не найден
	ErrMemberNotFound = errors.New("team: team member not found")

	// ErrEmailInUse возвращается, когда email уже занят сотрудником
	// или тенантом
	ErrEmailInUse = errors.New("team: email already in use")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("team: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("team: internal error")
)
