package entity

import "time"

// Roles soportados por la aplicación.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Estados de un usuario.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User identidad persistida de un usuario: credenciales + perfil.
// PasswordHash nunca sale hacia el cliente; usar Sanitize().
type User struct {
	ID           int64
	EmployeeID   string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Department   string
	Avatar       string
	Phone        string
	Position     string
	Bio          string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SafeUser vista de una identidad sin el hash de password, segura para
// devolver al cliente y para guardar como snapshot de sesión.
type SafeUser struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Avatar     string    `json:"avatar"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Bio        string    `json:"bio"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Sanitize devuelve la vista segura del usuario (sin password hash).
func (u *User) Sanitize() SafeUser {
	return SafeUser{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Avatar:     u.Avatar,
		Phone:      u.Phone,
		Position:   u.Position,
		Bio:        u.Bio,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
	}
}

// ValidRole indica si el rol es uno de los tres valores permitidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// DefaultAvatar avatar por defecto según rol (mismos glifos que el cliente).
func DefaultAvatar(role string) string {
	switch role {
	case RoleAdmin:
		return "👩‍💻"
	case RoleHR:
		return "👨‍💼"
	case RoleEmployee:
		return "👩‍💼"
	}
	return "👤"
}

// DefaultPosition cargo por defecto según rol.
func DefaultPosition(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrator"
	case RoleHR:
		return "HR Officer"
	default:
		return "Employee"
	}
}
