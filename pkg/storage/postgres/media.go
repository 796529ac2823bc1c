package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	mediaTable = "media"
)

func (p *PgSQL) StoreMedia(ctx context.Context, media ...domain.Media) ([]domain.Media, error) {
	if len(media) == 0 {
		return nil, nil
	}

	rows := make([]PgMedia, len(media))
	for i := range media {
		rows[i].FromDomain(media[i])
	}

	var result []PgMedia
	if err := p.Builder.Insert(mediaTable).
		Rows(rows).
		Returning(&PgMedia{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store media into pg: %w", err)
	}

	return pgMediaToDomain(result), nil
}

func (p *PgSQL) SpecialistMedia(ctx context.Context, ids ...domain.SpecialistID) ([]domain.Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgMedia
	if err := p.Builder.From(mediaTable).
		Where(
			goqu.I("specialist_id").In(specialistUUIDs(ids)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("specialist_id").Asc(), goqu.I("display_order").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch specialist media from pg: %w", err)
	}

	return pgMediaToDomain(rows), nil
}

// NextDisplayOrder considers soft-deleted media so positions are never reused.
func (p *PgSQL) NextDisplayOrder(ctx context.Context, id domain.SpecialistID) (int, error) {
	var maxOrder sql.NullInt64
	if _, err := p.Builder.From(mediaTable).
		Select(goqu.MAX("display_order")).
		Where(goqu.I("specialist_id").Eq(uuid.UUID(id))).
		Executor().ScanValContext(ctx, &maxOrder); err != nil {
		return 0, fmt.Errorf("could not fetch max display order from pg: %w", err)
	}
	if !maxOrder.Valid {
		return 0, nil
	}

	return int(maxOrder.Int64) + 1, nil
}

func (p *PgSQL) DeleteSpecialistMedia(ctx context.Context, id domain.SpecialistID) error {
	_, err := p.Builder.Update(mediaTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("specialist_id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete specialist media in pg: %w", err)
	}

	return nil
}

func specialistUUIDs(ids []domain.SpecialistID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}

	return out
}
