package readstore

import (
	"context"
	"errors"

	"homestay-booking/internal/infra"
	"homestay-booking/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomSnapshotStore serves the write side's room lookups.
type RoomSnapshotStore struct {
	db *pgxpool.Pool
}

func NewRoomSnapshotStore(db *pgxpool.Pool) *RoomSnapshotStore {
	return &RoomSnapshotStore{db: db}
}

func (r *RoomSnapshotStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	query, args, err := qb.Select(
		"r.id", "r.homestay_id", "h.host_id", "r.type", "r.name",
		"r.price_per_night", "r.max_guests", "r.status",
	).
		From("rooms r").
		Join("homestays h ON h.id = r.homestay_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room snapshot query", err)
	}

	var s commands.RoomSnapshot
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.HomestayID, &s.HostID, &s.Type, &s.Name,
		&s.PricePerNight, &s.MaxGuests, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &s, nil
}
