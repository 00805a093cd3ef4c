package create_booking

import (
	"time"

	"github.com/agendahub/TenantBookingService/internal/domain"
	createBooking "github.com/agendahub/TenantBookingService/internal/usecase/create_booking"
	"github.com/agendahub/TenantBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TenantSlug    string `json:"tenantSlug"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"` // "2025-10-15"
	BookingTime   string `json:"bookingTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	TenantSlug    string `json:"tenantSlug"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantSlug:    r.TenantSlug,
		ServiceName:   r.ServiceName,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          bookingDate,
		Time:          bookingTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		TenantSlug:    resp.TenantSlug,
		ServiceName:   resp.ServiceName,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		BookingDate:   resp.Date.Format(domain.DateFormat),
		BookingTime:   resp.Time.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
