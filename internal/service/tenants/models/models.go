package models

import (
	"encoding/json"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// SignupRequest запрос на регистрацию тенанта
type SignupRequest struct {
	Slug       string
	Name       string
	Theme      json.RawMessage
	Whatsapp   string
	Services   []domain.CatalogService
	PixKey     string
	Email      string
	Password   string
	WorkStart  string
	WorkEnd    string
	BreakStart string
	BreakEnd   string
}

// UpdateConfigRequest запрос на обновление конфигурации тенанта
// Credential-поля не обновляются этим запросом
type UpdateConfigRequest struct {
	Name       string
	Theme      json.RawMessage
	Whatsapp   string
	Services   []domain.CatalogService
	PixKey     string
	WorkStart  string
	WorkEnd    string
	BreakStart string
	BreakEnd   string
}

// TenantSummary элемент публичного каталога тенантов
type TenantSummary struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// TenantConfig публичная конфигурация тенанта
type TenantConfig struct {
	Name       string                  `json:"name"`
	Theme      json.RawMessage         `json:"theme"`
	Whatsapp   string                  `json:"whatsapp,omitempty"`
	Services   []domain.CatalogService `json:"services"`
	PixKey     string                  `json:"pixKey,omitempty"`
	WorkStart  string                  `json:"workStart"`
	WorkEnd    string                  `json:"workEnd"`
	BreakStart string                  `json:"breakStart,omitempty"`
	BreakEnd   string                  `json:"breakEnd,omitempty"`
}

// FromDomainTenant конвертирует тенанта в публичную конфигурацию
func FromDomainTenant(t *domain.Tenant) *TenantConfig {
	return &TenantConfig{
		Name:       t.Name,
		Theme:      t.Theme,
		Whatsapp:   t.Whatsapp,
		Services:   t.Services,
		PixKey:     t.PixKey,
		WorkStart:  t.WorkStart,
		WorkEnd:    t.WorkEnd,
		BreakStart: t.BreakStart,
		BreakEnd:   t.BreakEnd,
	}
}

// FromDomainTenantList конвертирует список тенантов в каталог
func FromDomainTenantList(tenants []*domain.Tenant) []*TenantSummary {
	summaries := make([]*TenantSummary, 0, len(tenants))
	for _, t := range tenants {
		summaries = append(summaries, &TenantSummary{Slug: t.Slug, Name: t.Name})
	}
	return summaries
}
