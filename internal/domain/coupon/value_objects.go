package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be flat or percent")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountFlat    DiscountType = "flat"
	DiscountPercent DiscountType = "percent"
)

// Discount is either a flat amount or a percentage of the order.
type Discount struct {
	kind  DiscountType
	value int64
}

func NewDiscount(kind DiscountType, value int64) (Discount, error) {
	switch kind {
	case DiscountFlat:
		if value < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
	case DiscountPercent:
		if value < 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() int64       { return d.value }

// AmountFor resolves the concrete discount for an order total. A flat
// discount never exceeds the order amount.
func (d Discount) AmountFor(orderAmount int64) int64 {
	if orderAmount <= 0 {
		return 0
	}
	switch d.kind {
	case DiscountPercent:
		return orderAmount * d.value / 100
	default:
		if d.value > orderAmount {
			return orderAmount
		}
		return d.value
	}
}
