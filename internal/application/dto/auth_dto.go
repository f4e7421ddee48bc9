package dto

// SignupRequest entrada de registro (password en texto, se hashea en el use case).
type SignupRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// Complete indica si están presentes los campos obligatorios del signup
// (department es opcional, igual que en la referencia).
func (r SignupRequest) Complete() bool {
	return r.EmployeeID != "" && r.Name != "" && r.Email != "" && r.Password != "" && r.Role != ""
}

// SigninRequest entrada de inicio de sesión.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SwitchRoleRequest cambio de rol activo de la sesión (solo development).
type SwitchRoleRequest struct {
	Role string `json:"role"`
}
