package characters

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/storage/postgres"
)

// postgresRepo persists characters across the characters, character_skills,
// character_specialties and active_characters tables
type postgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed character repository. The schema must
// already be migrated.
func NewPostgres(db *pgxpool.Pool) Repository {
	if db == nil {
		panic("postgres pool cannot be nil")
	}
	return &postgresRepo{db: db}
}

// Create inserts the character row with its skills and specialties in one
// transaction
func (r *postgresRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		values := characterValues(char, char.InDespair, char.CreatedAt, char.UpdatedAt)
		if _, err := tx.Exec(ctx, insertCharacterSQL(dollarPlaceholder), values...); err != nil {
			return err
		}
		return r.writeChildren(ctx, tx, char)
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			if postgres.ViolatedConstraint(err) == "characters_pkey" {
				return herr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
					WithMeta("character_id", char.ID)
			}
			return nameTaken(char.Name)
		}
		return herr.Wrap(err, "inserting character").WithMeta("character_id", char.ID)
	}
	return nil
}

// Get retrieves a character by primary key
func (r *postgresRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, herr.InvalidArgument("character ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("id = $1"), id)
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, notFound(id)
	}
	return chars[0], nil
}

// GetByName matches on LOWER(name), the same expression the unique index uses
func (r *postgresRepo) GetByName(ctx context.Context, userID, name string) (*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("user_id = $1 AND LOWER(name) = $2"), userID, nameKey(name))
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, nameNotFound(userID, name)
	}
	return chars[0], nil
}

// ListByOwner returns the user's characters ordered by name
func (r *postgresRepo) ListByOwner(ctx context.Context, userID string) ([]*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("user_id = $1"), userID)
	if err != nil {
		return nil, err
	}
	sortByName(chars)
	return chars, nil
}

// Update rewrites the row and replaces skills and specialties
func (r *postgresRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		values := characterValues(char, char.InDespair, char.CreatedAt, char.UpdatedAt)
		tag, err := tx.Exec(ctx, updateCharacterSQL(dollarPlaceholder), updateArgs(values)...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return notFound(char.ID)
		}
		return r.writeChildren(ctx, tx, char)
	})
	switch {
	case err == nil:
		return nil
	case herr.IsNotFound(err):
		return err
	case postgres.IsUniqueViolation(err):
		return nameTaken(char.Name)
	default:
		return herr.Wrap(err, "updating character").WithMeta("character_id", char.ID)
	}
}

// Delete removes the row; child rows and the active pointer cascade
func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return herr.InvalidArgument("character ID is required")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return herr.Wrap(err, "deleting character").WithMeta("character_id", id)
	}
	if tag.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

// SetActive upserts the user's active pointer
func (r *postgresRepo) SetActive(ctx context.Context, userID, characterID string) error {
	if userID == "" || characterID == "" {
		return herr.InvalidArgument("user ID and character ID are required")
	}

	var owner string
	err := r.db.QueryRow(ctx, `SELECT user_id FROM characters WHERE id = $1`, characterID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(characterID)
	}
	if err != nil {
		return herr.Wrap(err, "checking character owner")
	}
	if owner != userID {
		return notOwner(userID, characterID)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO active_characters (user_id, character_id) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET character_id = EXCLUDED.character_id`,
		userID, characterID)
	if err != nil {
		return herr.Wrap(err, "setting active character")
	}
	return nil
}

// GetActive returns the user's active character ID
func (r *postgresRepo) GetActive(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", herr.InvalidArgument("user ID is required")
	}

	var id string
	err := r.db.QueryRow(ctx, `SELECT character_id FROM active_characters WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", noActive(userID)
	}
	if err != nil {
		return "", herr.Wrap(err, "getting active character")
	}
	return id, nil
}

func (r *postgresRepo) writeChildren(ctx context.Context, tx pgx.Tx, char *entities.Character) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM character_skills WHERE character_id = $1`, char.ID)
	batch.Queue(`DELETE FROM character_specialties WHERE character_id = $1`, char.ID)

	for _, skill := range entities.AllSkills() {
		if dots, ok := char.Skills[skill]; ok {
			batch.Queue(`INSERT INTO character_skills (character_id, skill, dots) VALUES ($1, $2, $3)`,
				char.ID, string(skill), dots)
		}
	}
	for _, skill := range sortedSpecialtySkills(char) {
		for pos, name := range char.Specialties[skill] {
			batch.Queue(`INSERT INTO character_specialties (character_id, skill, name, position) VALUES ($1, $2, $3, $4)`,
				char.ID, string(skill), name, pos)
		}
	}

	return tx.SendBatch(ctx, batch).Close()
}

func (r *postgresRepo) query(ctx context.Context, sql string, args ...any) ([]*entities.Character, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, herr.Wrap(err, "querying characters")
	}
	defer rows.Close()

	chars := make([]*entities.Character, 0)
	byID := make(map[string]*entities.Character)
	ids := make([]string, 0)
	for rows.Next() {
		var (
			c       entities.Character
			attrs   [9]int
			creed   string
			created time.Time
			updated time.Time
		)
		if err := rows.Scan(characterDest(&c, &attrs, &creed, &c.InDespair, &created, &updated)...); err != nil {
			return nil, herr.Wrap(err, "scanning character row")
		}
		applyAttributes(&c, attrs, creed)
		c.CreatedAt, c.UpdatedAt = created.UTC(), updated.UTC()

		chars = append(chars, &c)
		byID[c.ID] = &c
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, herr.Wrap(err, "reading character rows")
	}
	if len(ids) == 0 {
		return chars, nil
	}

	if err := r.loadChildren(ctx, ids, byID); err != nil {
		return nil, err
	}
	return chars, nil
}

func (r *postgresRepo) loadChildren(ctx context.Context, ids []string, byID map[string]*entities.Character) error {
	rows, err := r.db.Query(ctx,
		`SELECT character_id, skill, dots FROM character_skills WHERE character_id = ANY($1)`, ids)
	if err != nil {
		return herr.Wrap(err, "querying skills")
	}
	for rows.Next() {
		var id, skill string
		var dots int
		if err := rows.Scan(&id, &skill, &dots); err != nil {
			rows.Close()
			return herr.Wrap(err, "scanning skill row")
		}
		byID[id].Skills[entities.Skill(skill)] = dots
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return herr.Wrap(err, "reading skill rows")
	}

	rows, err = r.db.Query(ctx, `
		SELECT character_id, skill, name FROM character_specialties
		WHERE character_id = ANY($1) ORDER BY character_id, skill, position`, ids)
	if err != nil {
		return herr.Wrap(err, "querying specialties")
	}
	defer rows.Close()
	for rows.Next() {
		var id, skill, name string
		if err := rows.Scan(&id, &skill, &name); err != nil {
			return herr.Wrap(err, "scanning specialty row")
		}
		c := byID[id]
		c.Specialties[entities.Skill(skill)] = append(c.Specialties[entities.Skill(skill)], name)
	}
	return rows.Err()
}
