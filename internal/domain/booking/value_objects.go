package booking

import (
	"errors"
	"strings"
)

var (
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrGuestEmailInvalid = errors.New("guest email is invalid")
	ErrGuestPhoneInvalid = errors.New("guest phone is invalid")
)

type GuestInfo struct {
	fullName string
	email    string
	phone    string
}

func NewGuestInfo(fullName, email, phone string) (GuestInfo, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return GuestInfo{}, ErrGuestNameRequired
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return GuestInfo{}, ErrGuestEmailInvalid
	}
	if len(phone) < 6 {
		return GuestInfo{}, ErrGuestPhoneInvalid
	}

	return GuestInfo{fullName: fullName, email: email, phone: phone}, nil
}

// ReconstructGuestInfo rebuilds stored guest info without re-validation.
func ReconstructGuestInfo(fullName, email, phone string) GuestInfo {
	return GuestInfo{fullName: fullName, email: email, phone: phone}
}

func (g GuestInfo) FullName() string { return g.fullName }
func (g GuestInfo) Email() string    { return g.email }
func (g GuestInfo) Phone() string    { return g.phone }

// Quote is the price breakdown shown to the guest and stored on the booking.
// TotalPrice never goes negative: a discount larger than the original price
// clamps to zero.
type Quote struct {
	Nights         int
	OriginalPrice  int64
	DiscountAmount int64
	TotalPrice     int64
}

func NewQuote(pricePerNight int64, nights int, discountAmount int64) Quote {
	if nights < 0 {
		nights = 0
	}
	original := pricePerNight * int64(nights)
	if original < 0 {
		original = 0
	}
	if discountAmount < 0 {
		discountAmount = 0
	}

	total := original - discountAmount
	if total < 0 {
		total = 0
	}

	return Quote{
		Nights:         nights,
		OriginalPrice:  original,
		DiscountAmount: discountAmount,
		TotalPrice:     total,
	}
}
