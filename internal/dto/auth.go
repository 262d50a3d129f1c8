package dto

type RegisterRequestDTO struct {
	FirstName   string `json:"first_name" validate:"required,max=50" example:"Jane"`
	LastName    string `json:"last_name" validate:"required,max=50" example:"Doe"`
	Email       string `json:"email" validate:"required" example:"jane.doe@example.com"`
	Password    string `json:"password" validate:"required" example:"Str0ng!Pass"`
	SSN         string `json:"ssn" validate:"required" example:"123-45-6789"`
	DateOfBirth string `json:"date_of_birth" validate:"required" example:"1990-04-02"`
	Phone       string `json:"phone" validate:"required" example:"(555) 123-4567"`
	State       string `json:"state" validate:"required" example:"CA"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required" example:"jane.doe@example.com"`
	Password string `json:"password" validate:"required" example:"Str0ng!Pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ProfileResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	FirstName   string `json:"first_name" example:"Jane"`
	LastName    string `json:"last_name" example:"Doe"`
	Email       string `json:"email" example:"jane.doe@example.com"`
	DateOfBirth string `json:"date_of_birth" example:"1990-04-02"`
	Phone       string `json:"phone" example:"5551234567"`
	State       string `json:"state" example:"CA"`
	CreatedAt   string `json:"created_at" example:"2024-11-20T16:09:57Z"`
}
