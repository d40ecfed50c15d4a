package postgres

import (
	"database/sql"
	"time"

	"bloghub/pkg/domain"
)

type PgUser struct {
	ID           int64     `db:"id" goqu:"skipinsert"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           int64(user.ID),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

type PgBlog struct {
	ID        int64        `db:"id" goqu:"skipinsert"`
	Title     string       `db:"title"`
	Content   string       `db:"content"`
	UserID    int64        `db:"user_id"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBlog) ToDomain() *domain.Blog {
	return &domain.Blog{
		ID:        domain.BlogID(p.ID),
		Title:     p.Title,
		Content:   p.Content,
		UserID:    domain.UserID(p.UserID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgBlog) FromDomain(blog domain.Blog) {
	*p = PgBlog{
		ID:        int64(blog.ID),
		Title:     blog.Title,
		Content:   blog.Content,
		UserID:    int64(blog.UserID),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  blog.UpdatedAt,
			Valid: !blog.UpdatedAt.IsZero(),
		},
	}
}

func pgBlogsToDomain(blogs []PgBlog) []domain.Blog {
	out := make([]domain.Blog, 0, len(blogs))
	for i := range blogs {
		out = append(out, *blogs[i].ToDomain())
	}

	return out
}

type PgSchool struct {
	ID          int64     `db:"id" goqu:"skipinsert"`
	Name        string    `db:"school_name"`
	WebsiteLink string    `db:"school_website_link"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSchool) ToDomain() *domain.School {
	return &domain.School{
		ID:          domain.SchoolID(p.ID),
		Name:        p.Name,
		WebsiteLink: p.WebsiteLink,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgSchool) FromDomain(school domain.School) {
	*p = PgSchool{
		ID:          int64(school.ID),
		Name:        school.Name,
		WebsiteLink: school.WebsiteLink,
		Content:     school.Content,
		CreatedAt:   school.CreatedAt,
	}
}

func pgSchoolsToDomain(schools []PgSchool) []domain.School {
	out := make([]domain.School, 0, len(schools))
	for i := range schools {
		out = append(out, *schools[i].ToDomain())
	}

	return out
}
