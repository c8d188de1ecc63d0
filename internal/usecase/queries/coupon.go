package queries

import (
	"context"

	"homestay-booking/internal/infra"
	"homestay-booking/internal/pkg/clock"
	"homestay-booking/internal/pkg/errs"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	FindAll(ctx context.Context) ([]*CouponView, error)
}

type CouponQueries interface {
	GetByCode(ctx context.Context, code string) (*CouponView, error)
	// ListActive returns only coupons currently inside their validity window.
	ListActive(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{readStore: readStore, clock: clock}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}
	return view, nil
}

func (q *couponQueriesImpl) ListActive(ctx context.Context) ([]*CouponView, error) {
	all, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list coupons")
	}

	now := q.clock.Now()
	active := make([]*CouponView, 0, len(all))
	for _, c := range all {
		if !now.Before(c.StartsAt) && !now.After(c.EndsAt) {
			active = append(active, c)
		}
	}
	return active, nil
}
