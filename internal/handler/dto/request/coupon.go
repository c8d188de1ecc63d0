package request

import "github.com/google/uuid"

type ValidateCouponRequest struct {
	Code        string    `json:"code" binding:"required"`
	OrderAmount int64     `json:"orderAmount" binding:"required,min=0"`
	HomestayID  uuid.UUID `json:"homestayId" binding:"required"`
}
