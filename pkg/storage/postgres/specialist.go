package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	specialistsTable = "specialists"
)

func (p *PgSQL) StoreSpecialist(ctx context.Context, specialist domain.Specialist) (*domain.Specialist, error) {
	var row PgSpecialist
	row.FromDomain(specialist)

	var stored PgSpecialist
	if _, err := p.Builder.Insert(specialistsTable).
		Rows(row).
		Returning(&PgSpecialist{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store specialist into pg: %w", translateError(err))
	}

	return stored.ToDomain(), nil
}

// SpecialistByID returns a live specialist, optionally locking its row with
// SELECT ... FOR UPDATE.
func (p *PgSQL) SpecialistByID(ctx context.Context, id domain.SpecialistID, lock bool) (*domain.Specialist, error) {
	ds := p.Builder.From(specialistsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgSpecialist
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch specialist by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SpecialistBySlug(ctx context.Context, slug string) (*domain.Specialist, error) {
	var row PgSpecialist
	found, err := p.Builder.From(specialistsTable).Where(
		goqu.I("slug").Eq(slug),
		goqu.I("deleted_at").IsNull(),
	).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch specialist by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SlugTaken checks every row, soft-deleted ones included, since the unique
// index covers them too.
func (p *PgSQL) SlugTaken(ctx context.Context, slug string, except *domain.SpecialistID) (bool, error) {
	w := []goqu.Expression{goqu.I("slug").Eq(slug)}
	if except != nil {
		w = append(w, goqu.I("id").Neq(uuid.UUID(*except)))
	}

	count, err := p.Builder.From(specialistsTable).Where(w...).CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check slug: %w", err)
	}

	return count > 0, nil
}

// UpdateSpecialist writes the non-nil changes guarded by the row version.
func (p *PgSQL) UpdateSpecialist(ctx context.Context,
	id domain.SpecialistID,
	version uint,
	changes storage.SpecialistChanges) (*domain.Specialist, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"version":    goqu.L("version + 1"),
	}
	if changes.Slug != nil {
		rec["slug"] = *changes.Slug
	}
	if changes.Title != nil {
		rec["title"] = *changes.Title
	}
	if changes.Description != nil {
		rec["description"] = *changes.Description
	}
	if changes.DurationDays != nil {
		rec["duration_days"] = *changes.DurationDays
	}
	if changes.BasePrice != nil {
		rec["base_price"] = *changes.BasePrice
	}
	if changes.PlatformFee != nil {
		rec["platform_fee"] = *changes.PlatformFee
	}
	if changes.FinalPrice != nil {
		rec["final_price"] = *changes.FinalPrice
	}
	if changes.IsDraft != nil {
		rec["is_draft"] = *changes.IsDraft
	}

	var row PgSpecialist
	found, err := p.Builder.Update(specialistsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("version").Eq(version),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgSpecialist{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update specialist in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSpecialist performs a soft delete by setting deleted_at.
func (p *PgSQL) DeleteSpecialist(ctx context.Context, id domain.SpecialistID) (*domain.Specialist, error) {
	var row PgSpecialist
	found, err := p.Builder.Update(specialistsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
			"version":    goqu.L("version + 1"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgSpecialist{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete specialist in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PublishedSpecialists returns a page of published specialists ordered by
// created_at DESC, id DESC.
func (p *PgSQL) PublishedSpecialists(ctx context.Context,
	search string,
	cursor *storage.PageCursor,
	limit uint) (storage.SpecialistPage, error) {
	w := []goqu.Expression{
		goqu.I("is_draft").IsFalse(),
		goqu.I("deleted_at").IsNull(),
	}
	if search != "" {
		w = append(w, goqu.I("title").ILike("%"+search+"%"))
	}
	if cursor != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// one extra row tells whether there is a next page
	var rows []PgSpecialist
	if err := p.Builder.From(specialistsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SpecialistPage{}, fmt.Errorf("could not fetch published specialists from pg: %w", err)
	}

	var next *storage.PageCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &storage.PageCursor{CreatedAt: last.CreatedAt, ID: domain.SpecialistID(last.ID)}
	}

	return storage.SpecialistPage{
		Specialists: pgSpecialistsToDomain(rows),
		NextCursor:  next,
	}, nil
}
