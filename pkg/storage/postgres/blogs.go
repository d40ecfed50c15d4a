package postgres

import (
	"context"
	"fmt"

	"bloghub/pkg/domain"
	"bloghub/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const blogsTable = "blogs"

func (p *PgSQL) StoreBlog(ctx context.Context, blog domain.Blog) (*domain.Blog, error) {
	var pgBlog PgBlog
	pgBlog.FromDomain(blog)

	var row PgBlog
	found, err := p.Builder.Insert(blogsTable).
		Rows(pgBlog).
		Returning(&PgBlog{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store blog into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert blog returned no row")
	}

	return row.ToDomain(), nil
}

// Blogs returns every post ordered by identifier.
func (p *PgSQL) Blogs(ctx context.Context) ([]domain.Blog, error) {
	var rows []PgBlog
	if err := p.Builder.From(blogsTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch blogs from pg: %w", err)
	}

	return pgBlogsToDomain(rows), nil
}

// BlogByID returns a post by its identifier, or nil when not found.
func (p *PgSQL) BlogByID(ctx context.Context, id domain.BlogID) (*domain.Blog, error) {
	var row PgBlog
	found, err := p.Builder.From(blogsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blog by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UpdateBlogByOwner applies a partial update conditioned on both id and owner
// in a single UPDATE statement. Omitted fields keep their prior value. The
// conditional statement makes the ownership check and the mutation atomic at
// the store; there is no separate existence check.
func (p *PgSQL) UpdateBlogByOwner(ctx context.Context,
	ownerID domain.UserID,
	id domain.BlogID,
	updates storage.BlogUpdates) (*domain.Blog, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Content != nil {
		rec["content"] = *updates.Content
	}

	var row PgBlog
	found, err := p.Builder.Update(blogsTable).
		Set(rec).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("user_id").Eq(int64(ownerID)),
	).Returning(&PgBlog{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update blog in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteBlogByOwner removes a post conditioned on both id and owner in a
// single DELETE statement and reports whether a row was removed.
func (p *PgSQL) DeleteBlogByOwner(ctx context.Context, ownerID domain.UserID, id domain.BlogID) (bool, error) {
	res, err := p.Builder.Delete(blogsTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(int64(ownerID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete blog in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read rows affected: %w", err)
	}

	return affected > 0, nil
}
