package create_team_member

import teamModels "github.com/agendahub/TenantBookingService/internal/service/team/models"

// CreateMemberRequest HTTP request model
type CreateMemberRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // manager или member; по умолчанию member
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMemberRequest) ToServiceRequest() *teamModels.CreateMemberRequest {
	return &teamModels.CreateMemberRequest{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}
