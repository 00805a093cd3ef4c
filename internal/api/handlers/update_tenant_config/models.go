package update_tenant_config

import (
	"encoding/json"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

// UpdateConfigRequest HTTP request model
// Credential-поля этим запросом не обновляются
type UpdateConfigRequest struct {
	Name       string                  `json:"name"`
	Theme      json.RawMessage         `json:"theme,omitempty"`
	Whatsapp   string                  `json:"whatsapp,omitempty"`
	Services   []domain.CatalogService `json:"services,omitempty"`
	PixKey     string                  `json:"pixKey,omitempty"`
	WorkStart  string                  `json:"workStart,omitempty"`
	WorkEnd    string                  `json:"workEnd,omitempty"`
	BreakStart string                  `json:"breakStart,omitempty"`
	BreakEnd   string                  `json:"breakEnd,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest() *tenantModels.UpdateConfigRequest {
	return &tenantModels.UpdateConfigRequest{
		Name:       r.Name,
		Theme:      r.Theme,
		Whatsapp:   r.Whatsapp,
		Services:   r.Services,
		PixKey:     r.PixKey,
		WorkStart:  r.WorkStart,
		WorkEnd:    r.WorkEnd,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}
