package handler

type activateRequest struct {
	Name      string `json:"name"      validate:"required"`
	NIC       string `json:"nic"       validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
}
