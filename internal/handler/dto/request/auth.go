package request

import (
	"homestay-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Email, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	return email, pass, nil
}
