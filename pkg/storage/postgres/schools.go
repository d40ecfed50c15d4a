package postgres

import (
	"context"
	"fmt"

	"bloghub/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const schoolsTable = "schools"

func (p *PgSQL) StoreSchool(ctx context.Context, school domain.School) (*domain.School, error) {
	var pgSchool PgSchool
	pgSchool.FromDomain(school)

	var row PgSchool
	found, err := p.Builder.Insert(schoolsTable).
		Rows(pgSchool).
		Returning(&PgSchool{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store school into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert school returned no row")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Schools(ctx context.Context) ([]domain.School, error) {
	var rows []PgSchool
	if err := p.Builder.From(schoolsTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch schools from pg: %w", err)
	}

	return pgSchoolsToDomain(rows), nil
}

func (p *PgSQL) SchoolByID(ctx context.Context, id domain.SchoolID) (*domain.School, error) {
	var row PgSchool
	found, err := p.Builder.From(schoolsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch school by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
