package domain

// Role роль принципала в рамках тенанта
// Закрытое перечисление: owner, manager, member
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// ParseRole валидирует строковое представление роли
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleMember:
		return Role(s), true
	default:
		return "", false
	}
}

// Principal аутентифицированный субъект, привязанный к одному тенанту
// Владелец представлен самой записью тенанта (отдельной строки в team_members
// у него нет), сотрудник - записью TeamMember
type Principal struct {
	ID         int64
	TenantSlug string
	Name       string
	Role       Role
}

// OwnerPrincipal создает принципала-владельца из записи тенанта
func OwnerPrincipal(t *Tenant) Principal {
	return Principal{
		ID:         t.ID,
		TenantSlug: t.Slug,
		Name:       t.Name,
		Role:       RoleOwner,
	}
}

// StaffPrincipal создает принципала-сотрудника из записи TeamMember
func StaffPrincipal(m *TeamMember) Principal {
	return Principal{
		ID:         m.ID,
		TenantSlug: m.TenantSlug,
		Name:       m.Name,
		Role:       m.Role,
	}
}

// IsScopedTo проверяет, что принципал принадлежит указанному тенанту
// Кросс-тенантный доступ запрещён независимо от роли
func (p Principal) IsScopedTo(slug string) bool {
	return p.TenantSlug == slug
}

// CanManageTeam проверяет право создавать и удалять сотрудников
func (p Principal) CanManageTeam() bool {
	switch p.Role {
	case RoleOwner:
		return true
	case RoleManager, RoleMember:
		return false
	default:
		return false
	}
}

// CanUpdateConfig проверяет право изменять конфигурацию тенанта
func (p Principal) CanUpdateConfig() bool {
	switch p.Role {
	case RoleOwner:
		return true
	case RoleManager, RoleMember:
		return false
	default:
		return false
	}
}

// CanViewAgenda проверяет право просматривать бронирования и статистику
// Manager и member имеют одинаковый доступ на чтение
func (p Principal) CanViewAgenda() bool {
	switch p.Role {
	case RoleOwner, RoleManager, RoleMember:
		return true
	default:
		return false
	}
}
