package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"compliance-backend/internal/domains/post/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

const postColumns = `
	id, slug, title, excerpt, content, cover_image, author,
	published, published_at, created_at, updated_at`

// updatableColumns whitelist các cột mà partial update được phép đụng tới
var updatableColumns = map[string]bool{
	"slug":         true,
	"title":        true,
	"excerpt":      true,
	"content":      true,
	"cover_image":  true,
	"author":       true,
	"published":    true,
	"published_at": true,
	"updated_at":   true,
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO blog_posts (
			id, slug, title, excerpt, content, cover_image, author,
			published, published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Content,
		post.CoverImage,
		post.Author,
		post.Published,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		// Unique constraint violation trên slug
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// =====================================================
// GET BY SLUG
// =====================================================

func (r *postgresPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := `SELECT` + postColumns + `
		FROM blog_posts
		WHERE slug = $1
	`

	post := &model.Post{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Author,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresPostRepository) List(ctx context.Context, includeDrafts bool) ([]*model.Post, error) {
	query := `SELECT` + postColumns + `
		FROM blog_posts
	`
	if !includeDrafts {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post := &model.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.Slug,
			&post.Title,
			&post.Excerpt,
			&post.Content,
			&post.CoverImage,
			&post.Author,
			&post.Published,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// =====================================================
// UPDATE (PARTIAL)
// =====================================================

// Update builds a SET clause from only the supplied columns, so two
// admins editing different fields never clobber each other's values.
func (r *postgresPostRepository) Update(ctx context.Context, slug string, changes map[string]interface{}) (*model.Post, error) {
	if len(changes) == 0 {
		return r.GetBySlug(ctx, slug)
	}

	setClauses := make([]string, 0, len(changes))
	args := make([]interface{}, 0, len(changes)+1)

	for column, value := range changes {
		if !updatableColumns[column] {
			return nil, fmt.Errorf("column %q is not updatable", column)
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	args = append(args, slug)
	query := fmt.Sprintf(`
		UPDATE blog_posts
		SET %s
		WHERE slug = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), len(args), postColumns)

	post := &model.Post{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Author,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresPostRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}
