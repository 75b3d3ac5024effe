package pgdocs

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"packshare/internal/repository"
	"packshare/internal/store"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository документное хранилище поверх одной таблицы documents:
// (path, id) -> jsonb. Все операции идут через querier и поэтому попадают
// в транзакцию из контекста, если она открыта.
type Repository struct {
	querier      Querier
	pollInterval time.Duration
}

// New pollInterval управляет частотой опроса подписок, ноль включает
// значение по умолчанию.
func New(querier Querier, pollInterval time.Duration) *Repository {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Repository{
		querier:      querier,
		pollInterval: pollInterval,
	}
}

func (r *Repository) Get(ctx context.Context, path, id string) (store.Document, error) {
	query := `
		SELECT path, id, data, created_at, updated_at
		FROM documents
		WHERE path = $1 AND id = $2
	`

	var docDB DocumentDB
	err := r.querier.QueryRow(ctx, query, path, id).Scan(
		&docDB.Path,
		&docDB.ID,
		&docDB.Data,
		&docDB.CreatedAt,
		&docDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Document{}, store.ErrDocumentNotFound
		}
		return store.Document{}, fmt.Errorf("unexpected documents repository get error: %w", err)
	}

	return ToDocument(&docDB)
}

// Create создаёт документ с новым id, который чеканит хранилище.
func (r *Repository) Create(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	id := uuid.NewString()
	if err := r.insert(ctx, path, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// CreateWithID создаёт документ под заданным id, существующий не перетирает.
func (r *Repository) CreateWithID(ctx context.Context, path, id string, data map[string]interface{}) error {
	return r.insert(ctx, path, id, data)
}

// SetWithID пишет документ под заданным id целиком, существующий заменяется.
func (r *Repository) SetWithID(ctx context.Context, path, id string, data map[string]interface{}) error {
	raw, err := FromData(data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (path, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (path, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	_, err = r.querier.Exec(ctx, query, path, id, raw)
	if err != nil {
		return fmt.Errorf("unexpected documents repository set error: %w", err)
	}
	return nil
}

// MergeUpdate частичное обновление: поля partial накладываются поверх
// существующего документа, остальные не трогаются.
func (r *Repository) MergeUpdate(ctx context.Context, path, id string, partial map[string]interface{}) error {
	raw, err := FromData(partial)
	if err != nil {
		return err
	}

	builder := qb.
		Update("documents").
		Set("data", sq.Expr("data || ?::jsonb", raw)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"path": path, "id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected documents repository merge error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected documents repository merge error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return store.ErrDocumentNotFound
	}
	return nil
}

// List полный срез коллекции, упорядоченный по полю документа orderBy
// по убыванию. Поле приводится к timestamptz: лексикографический порядок
// RFC3339-строк расходится с хронологическим при разной точности долей
// секунды.
func (r *Repository) List(ctx context.Context, path, orderBy string) (store.Snapshot, error) {
	builder := qb.
		Select("path", "id", "data", "created_at", "updated_at").
		From("documents").
		Where(sq.Eq{"path": path}).
		OrderBy("(data->>?)::timestamptz DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected documents repository list error: %w", err)
	}
	// squirrel не подставляет плейсхолдер в OrderBy, докладываем аргумент руками
	args = append(args, orderBy)

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected documents repository list error: %w", err)
	}
	defer rows.Close()

	snapshot := store.Snapshot{}
	for rows.Next() {
		var docDB DocumentDB
		err := rows.Scan(&docDB.Path, &docDB.ID, &docDB.Data, &docDB.CreatedAt, &docDB.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected documents repository list error: %w", err)
		}
		doc, err := ToDocument(&docDB)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected documents repository list error: %w", err)
	}

	return snapshot, nil
}

func (r *Repository) insert(ctx context.Context, path, id string, data map[string]interface{}) error {
	raw, err := FromData(data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (path, id, data)
		VALUES ($1, $2, $3)
	`
	_, err = r.querier.Exec(ctx, query, path, id, raw)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return store.ErrDocumentExists
		}
		return fmt.Errorf("unexpected documents repository create error: %w", err)
	}
	return nil
}
