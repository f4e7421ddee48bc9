package dto

// UpdateProfileRequest campos mutables de perfil. Email y rol no se
// tocan por esta vía.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Bio        string `json:"bio"`
}

// ChangePasswordRequest cambio de password verificando la actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
