package commands

import (
	"context"
	"errors"

	"homestay-booking/internal/domain/coupon"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/pkg/clock"
	"homestay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// CouponValidation is the outcome of checking a code against an order total.
// Ineligibility is data, not an error: the caller renders the reason inline.
// Name and the discount fields are filled whenever the code resolved to a
// coupon, so the caller can display it either way.
type CouponValidation struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code"`
	Name           string  `json:"name,omitempty"`
	DiscountType   string  `json:"discountType,omitempty"`
	DiscountValue  int64   `json:"discountValue,omitempty"`
	DiscountAmount int64   `json:"discountAmount"`
	TotalPrice     int64   `json:"totalPrice"`
	Reason         *string `json:"reason,omitempty"`
}

type CouponCommands interface {
	ValidateCoupon(ctx context.Context, code string, orderAmount int64, homestayID uuid.UUID) (*CouponValidation, error)
}

type couponCommandsImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponCommands(couponRepo CouponRepository, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{couponRepo: couponRepo, clock: clock}
}

// ValidateCoupon is the server-side authority on a coupon's discount.
// Coupons apply across all homestays; homestayID names the homestay the
// order belongs to but does not scope the lookup.
func (c *couponCommandsImpl) ValidateCoupon(ctx context.Context, code string, orderAmount int64, _ uuid.UUID) (*CouponValidation, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return rejected(code, orderAmount, "invalid coupon code"), nil
	}

	couponSnapshot, err := c.couponRepo.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return rejected(normalized.String(), orderAmount, "coupon not found"), nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponEntity, err := coupon.NewCoupon(
		couponSnapshot.ID,
		couponSnapshot.Code,
		couponSnapshot.Name,
		coupon.DiscountType(couponSnapshot.DiscountType),
		couponSnapshot.DiscountValue,
		couponSnapshot.MinOrder,
		couponSnapshot.StartsAt,
		couponSnapshot.EndsAt,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}

	if err := couponEntity.EligibleFor(orderAmount, c.clock.Now()); err != nil {
		result := rejected(normalized.String(), orderAmount, reasonFor(err))
		fillDetails(result, couponSnapshot)
		return result, nil
	}

	discount := couponEntity.DiscountAmount(orderAmount)
	total := orderAmount - discount
	if total < 0 {
		total = 0
	}
	result := &CouponValidation{
		Valid:          true,
		Code:           normalized.String(),
		DiscountAmount: discount,
		TotalPrice:     total,
	}
	fillDetails(result, couponSnapshot)
	return result, nil
}

func fillDetails(v *CouponValidation, snapshot *CouponSnapshot) {
	v.Name = snapshot.Name
	v.DiscountType = snapshot.DiscountType
	v.DiscountValue = snapshot.DiscountValue
}

func rejected(code string, orderAmount int64, reason string) *CouponValidation {
	return &CouponValidation{
		Valid:      false,
		Code:       code,
		TotalPrice: orderAmount,
		Reason:     &reason,
	}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, coupon.ErrCouponNotYetValid):
		return "coupon is not yet valid"
	case errors.Is(err, coupon.ErrCouponExpired):
		return "coupon has expired"
	case errors.Is(err, coupon.ErrMinOrderNotMet):
		return "order total is below the coupon minimum"
	default:
		return "coupon is not applicable"
	}
}
