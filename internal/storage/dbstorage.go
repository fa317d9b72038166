package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azaliaz/feedbackly/internal/domain/consts"
	"github.com/azaliaz/feedbackly/internal/domain/models"
	"github.com/azaliaz/feedbackly/internal/logger"
	storerrros "github.com/azaliaz/feedbackly/internal/storage/errors"
)

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	pool, err := pgxpool.New(ctx, addr)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DBStorage{
		pool: pool,
	}, nil
}

func (dbs *DBStorage) Close() {
	dbs.pool.Close()
}

func (dbs *DBStorage) SaveFeedback(feedback models.CreateFeedback) (models.Feedback, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	feedbackID := uuid.New().String()
	row := dbs.pool.QueryRow(ctx, `
		INSERT INTO feedbacks (id, text, rating)
		VALUES ($1, $2, $3)
		RETURNING id, text, rating, created_at, updated_at
	`, feedbackID, feedback.Text, feedback.Rating)

	var fb models.Feedback
	if err := row.Scan(&fb.ID, &fb.Text, &fb.Rating, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Warn().Str("feedback_id", feedbackID).Msg("duplicate feedback")
			return models.Feedback{}, storerrros.ErrFeedbackExists
		}
		log.Error().Err(err).Msg("failed to save feedback")
		return models.Feedback{}, err
	}

	log.Info().Str("feedback_id", fb.ID).Msg("feedback saved successfully")
	return fb, nil
}

func (dbs *DBStorage) GetFeedbacks(limit, offset int) ([]models.Feedback, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx, `
		SELECT id, text, rating, created_at, updated_at
		FROM feedbacks
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedbacks")
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0, limit)
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.Text, &fb.Rating, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan feedback row")
			return nil, err
		}
		feedbacks = append(feedbacks, fb)
	}
	if rows.Err() != nil {
		log.Error().Err(rows.Err()).Msg("rows iteration error")
		return nil, rows.Err()
	}

	return feedbacks, nil
}

func (dbs *DBStorage) GetFeedback(feedbackID string) (models.Feedback, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	row := dbs.pool.QueryRow(ctx, `
		SELECT id, text, rating, created_at, updated_at
		FROM feedbacks
		WHERE id = $1
	`, feedbackID)

	var fb models.Feedback
	if err := row.Scan(&fb.ID, &fb.Text, &fb.Rating, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn().Str("fid", feedbackID).Msg("feedback not found")
			return models.Feedback{}, storerrros.ErrFeedbackNotFound
		}
		log.Error().Err(err).Msg("failed to get feedback")
		return models.Feedback{}, err
	}
	return fb, nil
}

// UpdateFeedback merges the partial update inside a single statement, so two
// concurrent updates cannot interleave between a read and a write.
func (dbs *DBStorage) UpdateFeedback(feedbackID string, upd models.UpdateFeedback) (models.Feedback, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	row := dbs.pool.QueryRow(ctx, `
		UPDATE feedbacks
		SET text = COALESCE($1, text), rating = COALESCE($2, rating), updated_at = now()
		WHERE id = $3
		RETURNING id, text, rating, created_at, updated_at
	`, upd.Text, upd.Rating, feedbackID)

	var fb models.Feedback
	if err := row.Scan(&fb.ID, &fb.Text, &fb.Rating, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn().Str("fid", feedbackID).Msg("feedback not found")
			return models.Feedback{}, storerrros.ErrFeedbackNotFound
		}
		log.Error().Err(err).Msg("failed to update feedback")
		return models.Feedback{}, err
	}

	log.Info().Str("fid", fb.ID).Msg("feedback updated successfully")
	return fb, nil
}

func (dbs *DBStorage) DeleteFeedback(feedbackID string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx, `DELETE FROM feedbacks WHERE id = $1`, feedbackID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete feedback")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Str("fid", feedbackID).Msg("feedback not found")
		return storerrros.ErrFeedbackNotFound
	}
	log.Info().Str("fid", feedbackID).Msg("feedback deleted successfully")
	return nil
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations to apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations applied")
	return nil
}
