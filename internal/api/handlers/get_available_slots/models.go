package get_available_slots

import (
	"time"

	"github.com/agendahub/TenantBookingService/internal/domain"
	getAvailableSlots "github.com/agendahub/TenantBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TenantSlug string   `json:"tenantSlug"`
	Date       string   `json:"date"`
	FreeSlots  []string `json:"freeSlots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(tenantSlug, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TenantSlug: tenantSlug,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.FreeSlots))
	for _, s := range resp.FreeSlots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		TenantSlug: resp.TenantSlug,
		Date:       resp.Date.Format(domain.DateFormat),
		FreeSlots:  slots,
	}
}
