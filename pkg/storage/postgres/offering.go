package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	offeringLinksTable = "specialist_offerings"
	catalogTable       = "catalog_offerings"
)

// OfferingLinks returns the links joined with their catalog offerings,
// ordered by specialist and offering title.
func (p *PgSQL) OfferingLinks(ctx context.Context, ids ...domain.SpecialistID) ([]domain.OfferingLink, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgOfferingLink
	if err := p.Builder.From(goqu.T(offeringLinksTable).As("l")).
		Join(goqu.T(catalogTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("l.offering_id")))).
		Select(
			goqu.I("l.specialist_id"),
			goqu.I("l.offering_id"),
			goqu.I("l.created_at"),
			goqu.I("l.updated_at"),
			goqu.I("c.title"),
			goqu.I("c.description"),
			goqu.I("c.image_key"),
			goqu.I("c.bucket_name"),
		).
		Where(goqu.I("l.specialist_id").In(specialistUUIDs(ids))).
		Order(goqu.I("l.specialist_id").Asc(), goqu.I("c.title").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch offering links from pg: %w", err)
	}

	out := make([]domain.OfferingLink, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AddOfferingLinks(ctx context.Context, id domain.SpecialistID, offerings ...domain.CatalogOfferingID) error {
	if len(offerings) == 0 {
		return nil
	}

	rows := make([]goqu.Record, len(offerings))
	for i, offeringID := range offerings {
		rows[i] = goqu.Record{
			"specialist_id": uuid.UUID(id),
			"offering_id":   uuid.UUID(offeringID),
		}
	}

	if _, err := p.Builder.Insert(offeringLinksTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store offering links into pg: %w", translateError(err))
	}

	return nil
}

func (p *PgSQL) RemoveOfferingLinks(ctx context.Context, id domain.SpecialistID, offerings ...domain.CatalogOfferingID) error {
	if len(offerings) == 0 {
		return nil
	}

	if _, err := p.Builder.Delete(offeringLinksTable).
		Where(
			goqu.I("specialist_id").Eq(uuid.UUID(id)),
			goqu.I("offering_id").In(offeringUUIDs(offerings)),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not remove offering links from pg: %w", err)
	}

	return nil
}

func (p *PgSQL) MissingCatalogOfferings(ctx context.Context,
	ids ...domain.CatalogOfferingID) ([]domain.CatalogOfferingID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []uuid.UUID
	if err := p.Builder.From(catalogTable).
		Select(goqu.I("id")).
		Where(goqu.I("id").In(offeringUUIDs(ids))).
		Executor().ScanValsContext(ctx, &existing); err != nil {
		return nil, fmt.Errorf("could not check catalog offerings in pg: %w", err)
	}

	found := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []domain.CatalogOfferingID
	for _, id := range ids {
		if _, ok := found[uuid.UUID(id)]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}

func (p *PgSQL) CatalogOfferings(ctx context.Context) ([]domain.CatalogOffering, error) {
	var rows []PgCatalogOffering
	if err := p.Builder.From(catalogTable).
		Order(goqu.I("title").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch catalog offerings from pg: %w", err)
	}

	out := make([]domain.CatalogOffering, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreCatalogOfferings(ctx context.Context,
	offerings ...domain.CatalogOffering) ([]domain.CatalogOffering, error) {
	if len(offerings) == 0 {
		return nil, nil
	}

	rows := make([]PgCatalogOffering, len(offerings))
	for i := range offerings {
		rows[i].FromDomain(offerings[i])
	}

	var result []PgCatalogOffering
	if err := p.Builder.Insert(catalogTable).
		Rows(rows).
		Returning(&PgCatalogOffering{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store catalog offerings into pg: %w", err)
	}

	out := make([]domain.CatalogOffering, 0, len(result))
	for i := range result {
		out = append(out, result[i].ToDomain())
	}

	return out, nil
}

func offeringUUIDs(ids []domain.CatalogOfferingID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}

	return out
}
