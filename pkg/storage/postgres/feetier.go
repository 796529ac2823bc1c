package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	feeTiersTable = "fee_tiers"
)

// FeeTiers returns the schedule ordered by min_value.
func (p *PgSQL) FeeTiers(ctx context.Context) ([]domain.FeeTier, error) {
	var rows []PgFeeTier
	if err := p.Builder.From(feeTiersTable).
		Order(goqu.I("min_value").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch fee tiers from pg: %w", err)
	}

	out := make([]domain.FeeTier, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreFeeTiers(ctx context.Context, tiers ...domain.FeeTier) ([]domain.FeeTier, error) {
	if len(tiers) == 0 {
		return nil, nil
	}

	rows := make([]PgFeeTier, len(tiers))
	for i := range tiers {
		rows[i].FromDomain(tiers[i])
	}

	var result []PgFeeTier
	if err := p.Builder.Insert(feeTiersTable).
		Rows(rows).
		Returning(&PgFeeTier{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store fee tiers into pg: %w", err)
	}

	out := make([]domain.FeeTier, 0, len(result))
	for i := range result {
		out = append(out, result[i].ToDomain())
	}

	return out, nil
}
