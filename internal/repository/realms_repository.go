package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/entity"
)

type RealmsRepository struct {
	conn PgConnection
}

func NewRealmsRepo(cfg DBConfig) *RealmsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for realmsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for realmsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RealmsRepository{
		conn: pool,
	}
}

func NewRealmsRepoWithConn(conn PgConnection) *RealmsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for realmsRepo: " + err.Error())
	}
	return &RealmsRepository{
		conn: conn,
	}
}

func (rr *RealmsRepository) Create(ctx context.Context, realm *entity.Realm) error {
	if realm == nil {
		return errors.New("realm is nil")
	}
	row := rr.conn.QueryRow(ctx,
		`INSERT INTO realms (name, description, category, focus_outcome, color_scheme) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		realm.Name,
		realm.Description,
		realm.Category,
		realm.FocusOutcome,
		realm.ColorScheme,
	)
	if err := row.Scan(&realm.ID, &realm.CreatedAt); err != nil {
		return errors.New("creating realm db error: " + err.Error())
	}
	return nil
}

func (rr *RealmsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Realm, error) {
	var realm entity.Realm
	realm.ID = id
	row := rr.conn.QueryRow(ctx,
		`SELECT name, description, category, COALESCE(focus_outcome, ''), COALESCE(color_scheme, ''),
			COALESCE(metaphors, '[]'::jsonb), COALESCE(icebreaker_prompts, '[]'::jsonb), created_at
		FROM realms WHERE id = $1;`, id)
	err := row.Scan(
		&realm.Name,
		&realm.Description,
		&realm.Category,
		&realm.FocusOutcome,
		&realm.ColorScheme,
		&realm.Metaphors,
		&realm.IcebreakerPrompts,
		&realm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRealmNotFound
		}
		return nil, errors.New("getting realm by id error: " + err.Error())
	}
	return &realm, nil
}

func (rr *RealmsRepository) List(ctx context.Context) ([]*entity.Realm, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, name, description, category, COALESCE(focus_outcome, ''), COALESCE(color_scheme, ''),
			COALESCE(metaphors, '[]'::jsonb), COALESCE(icebreaker_prompts, '[]'::jsonb), created_at
		FROM realms ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing realms error: " + err.Error())
	}
	defer rows.Close()
	realms := make([]*entity.Realm, 0)
	for rows.Next() {
		r := entity.Realm{}
		err = rows.Scan(&r.ID, &r.Name, &r.Description, &r.Category, &r.FocusOutcome, &r.ColorScheme,
			&r.Metaphors, &r.IcebreakerPrompts, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("realm row parsing error: " + err.Error())
		}
		realms = append(realms, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected realm rows error: " + rows.Err().Error())
	}
	return realms, nil
}

func (rr *RealmsRepository) UpdateGeneratedContent(ctx context.Context, id uuid.UUID, metaphors []entity.Metaphor, icebreakers []string) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE realms SET metaphors = $1, icebreaker_prompts = $2 WHERE id = $3;`,
		metaphors,
		icebreakers,
		id,
	)
	if err != nil {
		return errors.New("updating realm content error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRealmNotFound
	}
	return nil
}

func (rr *RealmsRepository) Count(ctx context.Context) (int, error) {
	row := rr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM realms;`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting realms: " + err.Error())
	}
	return count, nil
}
