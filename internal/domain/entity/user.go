package entity

import "time"

// Roles válidos para User, en jerarquía estricta: cada rol incluye implícitamente
// los permisos de los roles inferiores.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleUser       = "USER"
)

// roleRank orden total de la jerarquía. Un rol desconocido vale -1 (sin privilegios).
var roleRank = map[string]int{
	RoleUser:       0,
	RoleManager:    1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RoleRank devuelve la posición del rol en la jerarquía (-1 si es desconocido).
func RoleRank(role string) int {
	if r, ok := roleRank[role]; ok {
		return r
	}
	return -1
}

// RoleAtLeast informa si role tiene al menos el nivel de min en la jerarquía.
func RoleAtLeast(role, min string) bool {
	return RoleRank(role) >= 0 && RoleRank(role) >= RoleRank(min)
}

// ValidRole informa si el nombre de rol es reconocido.
func ValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// User representa un usuario del sistema (pertenece a exactamente un Tenant).
type User struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca plano en dominio después de persistir
	Name         string    `json:"name"`
	Role         string    `json:"role"` // SUPER_ADMIN, ADMIN, MANAGER, USER
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
