package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default business hours
// Используются, когда у тенанта часы не заданы или заданы некорректно
const (
	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "18:00"
)

// SlotStepMinutes шаг сетки слотов
// Каждый слот - атомарная единица фиксированного размера
const SlotStepMinutes = 30
