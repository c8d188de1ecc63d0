package readstore

import (
	"context"
	"errors"

	"homestay-booking/internal/domain/coupon"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/usecase/commands"
	"homestay-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponReadStore struct {
	db *pgxpool.Pool
}

func NewCouponReadStore(db *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{db: db}
}

var couponColumns = []string{
	"id", "code", "name", "discount_type", "discount_value", "min_order",
	"starts_at", "ends_at", "created_at", "updated_at",
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
	}

	query, args, err := qb.Select(couponColumns...).
		From("coupons").
		Where(sq.Eq{"code": normalized.String()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build coupon query", err)
	}

	view, err := scanCoupon(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return view, nil
}

func (r *CouponReadStore) FindAll(ctx context.Context) ([]*queries.CouponView, error) {
	query, args, err := qb.Select(couponColumns...).
		From("coupons").
		OrderBy("starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build coupon list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	views := make([]*queries.CouponView, 0)
	for rows.Next() {
		view, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return views, nil
}

// CouponSnapshotStore adapts the read store to the write-side snapshot port.
type CouponSnapshotStore struct {
	inner *CouponReadStore
}

func NewCouponSnapshotStore(inner *CouponReadStore) *CouponSnapshotStore {
	return &CouponSnapshotStore{inner: inner}
}

func (s *CouponSnapshotStore) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	view, err := s.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &commands.CouponSnapshot{
		ID:            view.ID,
		Code:          view.Code,
		Name:          view.Name,
		DiscountType:  view.DiscountType,
		DiscountValue: view.DiscountValue,
		MinOrder:      view.MinOrder,
		StartsAt:      view.StartsAt,
		EndsAt:        view.EndsAt,
	}, nil
}

func scanCoupon(row pgx.Row) (*queries.CouponView, error) {
	var v queries.CouponView
	err := row.Scan(
		&v.ID, &v.Code, &v.Name, &v.DiscountType, &v.DiscountValue, &v.MinOrder,
		&v.StartsAt, &v.EndsAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
