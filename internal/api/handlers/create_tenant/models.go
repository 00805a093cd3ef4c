package create_tenant

import (
	"encoding/json"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

// CreateTenantRequest HTTP request model
type CreateTenantRequest struct {
	Slug       string                  `json:"slug"`
	Name       string                  `json:"name"`
	Theme      json.RawMessage         `json:"theme,omitempty"`
	Whatsapp   string                  `json:"whatsapp,omitempty"`
	Services   []domain.CatalogService `json:"services,omitempty"`
	PixKey     string                  `json:"pixKey,omitempty"`
	Email      string                  `json:"email"`
	Password   string                  `json:"password"`
	WorkStart  string                  `json:"workStart,omitempty"`
	WorkEnd    string                  `json:"workEnd,omitempty"`
	BreakStart string                  `json:"breakStart,omitempty"`
	BreakEnd   string                  `json:"breakEnd,omitempty"`
}

// CreateTenantResponse HTTP response model
// Credential-поля в ответ не попадают
type CreateTenantResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTenantRequest) ToServiceRequest() *tenantModels.SignupRequest {
	return &tenantModels.SignupRequest{
		Slug:       r.Slug,
		Name:       r.Name,
		Theme:      r.Theme,
		Whatsapp:   r.Whatsapp,
		Services:   r.Services,
		PixKey:     r.PixKey,
		Email:      r.Email,
		Password:   r.Password,
		WorkStart:  r.WorkStart,
		WorkEnd:    r.WorkEnd,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}

// FromDomainTenant конвертирует созданного тенанта в HTTP response
func FromDomainTenant(t *domain.Tenant) *CreateTenantResponse {
	return &CreateTenantResponse{
		ID:   t.ID,
		Slug: t.Slug,
		Name: t.Name,
	}
}
