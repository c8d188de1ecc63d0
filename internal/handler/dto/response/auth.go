package response

import "homestay-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *queries.AuthorizedUserView `json:"user"`
}
