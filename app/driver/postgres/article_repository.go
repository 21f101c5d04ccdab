package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"news-service/app/domain"
	"news-service/app/port"
)

// PostgreSQL error codes worth translating into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// articleColumns is the canonical select list for article rows, with the
// like list aggregated from the join table.
const articleColumns = `
	a.id, a.title, a.description, a.content, a.category, a.image_url,
	a.views, a.created_at, a.updated_at,
	COALESCE(array_agg(l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes`

// ArticleRepository implements port.ArticleRepository for PostgreSQL
type ArticleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewArticleRepository creates a new PostgreSQL article repository
func NewArticleRepository(db DatabaseIface, logger *slog.Logger) port.ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	article := &domain.Article{}
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Content,
		&article.Category,
		&article.ImageURL,
		&article.Views,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.Likes,
	)
	if err != nil {
		return nil, err
	}
	if article.Likes == nil {
		article.Likes = []uuid.UUID{}
	}
	return article, nil
}

// Create stores a new article. A duplicate title surfaces as
// domain.ErrDuplicateTitle.
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (id, title, description, content, category, image_url, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Description,
		article.Content,
		article.Category,
		article.ImageURL,
		article.Views,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateTitle
		}
		r.logger.Error("Failed to create article", "article_id", article.ID, "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// GetByID fetches an article without touching its view counter.
func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := `
		SELECT` + articleColumns + `
		FROM articles a
		LEFT JOIN article_likes l ON l.article_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		r.logger.Error("Failed to get article", "article_id", id, "error", err)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// IncrementViews bumps the view counter and returns the updated article.
// The increment and the read happen in one statement so concurrent reads
// never lose a view.
func (r *ArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := `
		WITH bumped AS (
			UPDATE articles
			SET views = views + 1
			WHERE id = $1
			RETURNING id, title, description, content, category, image_url, views, created_at, updated_at
		)
		SELECT
			a.id, a.title, a.description, a.content, a.category, a.image_url,
			a.views, a.created_at, a.updated_at,
			COALESCE(array_agg(l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes
		FROM bumped a
		LEFT JOIN article_likes l ON l.article_id = a.id
		GROUP BY a.id, a.title, a.description, a.content, a.category, a.image_url,
			a.views, a.created_at, a.updated_at`

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		r.logger.Error("Failed to increment views", "article_id", id, "error", err)
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}
	return article, nil
}

// Update applies a partial update and returns the new state.
func (r *ArticleRepository) Update(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if update.Title != nil {
		addSet("title", strings.TrimSpace(*update.Title))
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Content != nil {
		addSet("content", *update.Content)
	}
	if update.Category != nil {
		addSet("category", *update.Category)
	}
	if update.ImageURL != nil {
		addSet("image_url", *update.ImageURL)
	}
	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		`UPDATE articles SET %s WHERE id = $%d
		RETURNING id, title, description, content, category, image_url, views, created_at, updated_at`,
		strings.Join(setClauses, ", "), arg)
	args = append(args, id)

	article := &domain.Article{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Content,
		&article.Category,
		&article.ImageURL,
		&article.Views,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateTitle
		}
		r.logger.Error("Failed to update article", "article_id", id, "error", err)
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	likes, err := r.likesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Likes = likes
	return article, nil
}

// Delete removes an article; the likes rows go with it via ON DELETE CASCADE.
func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete article", "article_id", id, "error", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// ToggleLike flips the user's like on the article. The insert is attempted
// first; when the row already exists it is removed instead. Both primitives
// are idempotent, so concurrent toggles cannot duplicate likes.
func (r *ArticleRepository) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (bool, int, error) {
	insert := `
		INSERT INTO article_likes (article_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (article_id, user_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, insert, articleID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, 0, domain.ErrArticleNotFound
		}
		r.logger.Error("Failed to insert like", "article_id", articleID, "user_id", userID, "error", err)
		return false, 0, fmt.Errorf("failed to insert like: %w", err)
	}

	liked := tag.RowsAffected() == 1
	if !liked {
		// Row already existed, so this toggle is an unlike.
		if _, err := r.db.Exec(ctx,
			`DELETE FROM article_likes WHERE article_id = $1 AND user_id = $2`,
			articleID, userID,
		); err != nil {
			r.logger.Error("Failed to delete like", "article_id", articleID, "user_id", userID, "error", err)
			return false, 0, fmt.Errorf("failed to delete like: %w", err)
		}
	}

	var likes int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM article_likes WHERE article_id = $1`, articleID,
	).Scan(&likes); err != nil {
		r.logger.Error("Failed to count likes", "article_id", articleID, "error", err)
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return liked, likes, nil
}

// List returns one page of articles plus the total match count. Search and
// category filters share the same predicate across both queries so the
// pagination math stays consistent.
func (r *ArticleRepository) List(ctx context.Context, query domain.ListQuery) ([]*domain.Article, int, error) {
	where := []string{}
	args := []interface{}{}
	arg := 1

	if query.Category != "" {
		where = append(where, fmt.Sprintf("a.category = $%d", arg))
		args = append(args, query.Category)
		arg++
	}
	if query.Search != "" {
		where = append(where, fmt.Sprintf(
			"(a.title ILIKE $%d OR a.description ILIKE $%d OR a.content ILIKE $%d)",
			arg, arg, arg))
		args = append(args, "%"+query.Search+"%")
		arg++
	}

	predicate := ""
	if len(where) > 0 {
		predicate = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM articles a` + predicate
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count articles", "error", err)
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	direction := "DESC"
	if query.Order == domain.OrderAsc {
		direction = "ASC"
	}

	listQuery := fmt.Sprintf(`
		SELECT`+articleColumns+`
		FROM articles a
		LEFT JOIN article_likes l ON l.article_id = a.id
		%s
		GROUP BY a.id
		ORDER BY a.%s %s
		LIMIT $%d OFFSET $%d`,
		predicate, query.SortBy.Column(), direction, arg, arg+1)
	args = append(args, query.Limit, query.Offset())

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Error("Failed to list articles", "error", err)
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles, err := collectArticles(rows)
	if err != nil {
		r.logger.Error("Failed to scan article rows", "error", err)
		return nil, 0, err
	}
	return articles, total, nil
}

// Featured returns the newest articles for the landing view.
func (r *ArticleRepository) Featured(ctx context.Context, limit int) ([]*domain.Article, error) {
	query := `
		SELECT` + articleColumns + `
		FROM articles a
		LEFT JOIN article_likes l ON l.article_id = a.id
		GROUP BY a.id
		ORDER BY a.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to fetch featured articles", "error", err)
		return nil, fmt.Errorf("failed to fetch featured articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// Categories returns the distinct categories that currently have articles.
func (r *ArticleRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM articles ORDER BY category`)
	if err != nil {
		r.logger.Error("Failed to fetch categories", "error", err)
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// InsertIfNew stores the article unless the title is already taken.
func (r *ArticleRepository) InsertIfNew(ctx context.Context, article *domain.Article) (bool, error) {
	query := `
		INSERT INTO articles (id, title, description, content, category, image_url, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (title) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Description,
		article.Content,
		article.Category,
		article.ImageURL,
		article.Views,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert article", "title", article.Title, "error", err)
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *ArticleRepository) likesFor(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM article_likes WHERE article_id = $1`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	defer rows.Close()

	likes := []uuid.UUID{}
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like rows: %w", err)
	}
	return likes, nil
}

func collectArticles(rows pgx.Rows) ([]*domain.Article, error) {
	articles := []*domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}
