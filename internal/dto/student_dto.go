package dto

type StudentDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StudentRegisterDTO struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=254"`
}

type StudentLoginDTO struct {
	Email string `json:"email" binding:"required"`
}

// StudentAuthResponse is returned by both register and login.
type StudentAuthResponse struct {
	Message string     `json:"message"`
	Student StudentDTO `json:"student"`
}
