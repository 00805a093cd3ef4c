package models

import "github.com/agendahub/TenantBookingService/internal/domain"

// CreateMemberRequest запрос на создание сотрудника
type CreateMemberRequest struct {
	Email    string
	Name     string
	Password string
	Role     string // manager или member; пустое значение = member
}

// MemberView представление сотрудника (без credential-полей)
type MemberView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FromDomainMember конвертирует доменную модель в представление
func FromDomainMember(m *domain.TeamMember) *MemberView {
	return &MemberView{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  string(m.Role),
	}
}

// FromDomainMemberList конвертирует список сотрудников
func FromDomainMemberList(members []*domain.TeamMember) []*MemberView {
	views := make([]*MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, FromDomainMember(m))
	}
	return views
}
