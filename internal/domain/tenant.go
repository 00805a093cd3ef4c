package domain

import (
	"encoding/json"
	"time"
)

// CatalogService услуга из каталога тенанта
// Названия услуг уникальны в пределах тенанта
type CatalogService struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // минуты
}

// Tenant независимый бизнес-аккаунт (единица изоляции данных)
// Идентифицируется уникальным slug; владелец аутентифицируется
// по email/password_hash самой записи тенанта
type Tenant struct {
	ID           int64
	Slug         string
	Name         string
	Theme        json.RawMessage // непрозрачный дескриптор темы, ядро его не интерпретирует
	Whatsapp     string
	Services     []CatalogService
	PixKey       string // платёжный ключ, опционален
	Email        string
	PasswordHash string

	// Рабочие часы и перерыв в формате "HH:MM"
	// Пустой BreakStart/BreakEnd означает отсутствие перерыва
	WorkStart  string
	WorkEnd    string
	BreakStart string
	BreakEnd   string

	CreatedAt time.Time
}

// ServicePriceMap строит отображение название услуги -> цена
// по текущему каталогу тенанта
func (t *Tenant) ServicePriceMap() map[string]float64 {
	prices := make(map[string]float64, len(t.Services))
	for _, s := range t.Services {
		prices[s.Name] = s.Price
	}
	return prices
}

// HasBreak returns true if the tenant has a configured break window
func (t *Tenant) HasBreak() bool {
	return t.BreakStart != "" && t.BreakEnd != ""
}

// TeamMember сотрудник тенанта (не владелец)
// Email глобально уникален: не пересекается ни с другими сотрудниками,
// ни с email-ами тенантов
type TeamMember struct {
	ID           int64
	TenantSlug   string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
