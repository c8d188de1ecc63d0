// Package coupon implements the client-side coupon eligibility rules. These
// are advisory: the validate operation remains the final authority on whether
// a code is accepted.
package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrMinOrderNotMet    = errors.New("order total is below the coupon minimum")
)

type Coupon struct {
	id       uuid.UUID
	code     Code
	name     string
	discount Discount
	minOrder *int64
	startsAt time.Time
	endsAt   time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	name string,
	discountType DiscountType,
	discountValue int64,
	minOrder *int64,
	startsAt, endsAt time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(discountType, discountValue)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:       id,
		code:     couponCode,
		name:     name,
		discount: discount,
		minOrder: minOrder,
		startsAt: startsAt,
		endsAt:   endsAt,
	}, nil
}

func (c *Coupon) IsActiveAt(t time.Time) bool {
	if !c.startsAt.IsZero() && t.Before(c.startsAt) {
		return false
	}
	if !c.endsAt.IsZero() && t.After(c.endsAt) {
		return false
	}
	return true
}

// EligibleFor is the pre-filter applied before the validate call: the
// validity window and the minimum order total.
func (c *Coupon) EligibleFor(orderAmount int64, now time.Time) error {
	if !c.startsAt.IsZero() && now.Before(c.startsAt) {
		return ErrCouponNotYetValid
	}
	if !c.endsAt.IsZero() && now.After(c.endsAt) {
		return ErrCouponExpired
	}
	if c.minOrder != nil && orderAmount < *c.minOrder {
		return ErrMinOrderNotMet
	}
	return nil
}

// DiscountAmount resolves the monetary effect for an order total.
func (c *Coupon) DiscountAmount(orderAmount int64) int64 {
	return c.discount.AmountFor(orderAmount)
}

func (c *Coupon) ID() uuid.UUID      { return c.id }
func (c *Coupon) Code() Code         { return c.code }
func (c *Coupon) Name() string       { return c.name }
func (c *Coupon) Discount() Discount { return c.discount }
func (c *Coupon) MinOrder() *int64   { return c.minOrder }
func (c *Coupon) StartsAt() time.Time { return c.startsAt }
func (c *Coupon) EndsAt() time.Time   { return c.endsAt }
