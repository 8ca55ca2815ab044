package characters

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/storage/sqlite"
)

// sqliteRepo mirrors the Postgres store on a local file. Timestamps are
// stored as unix milliseconds.
type sqliteRepo struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed character repository. The schema must
// already be migrated.
func NewSQLite(db *sql.DB) Repository {
	if db == nil {
		panic("sqlite db cannot be nil")
	}
	return &sqliteRepo{db: db}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Create inserts the character and its child rows in one transaction
func (r *sqliteRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		values := characterValues(char, char.InDespair, toMillis(char.CreatedAt), toMillis(char.UpdatedAt))
		if _, err := tx.ExecContext(ctx, insertCharacterSQL(questionPlaceholder), values...); err != nil {
			return err
		}
		return r.writeChildren(ctx, tx, char)
	})
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			if strings.Contains(err.Error(), "characters.id") {
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
func (r *sqliteRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, herr.InvalidArgument("character ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("id = ?"), id)
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, notFound(id)
	}
	return chars[0], nil
}

// GetByName compares with NOCASE, the collation of the unique index
func (r *sqliteRepo) GetByName(ctx context.Context, userID, name string) (*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("user_id = ? AND name = ? COLLATE NOCASE"),
		userID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, nameNotFound(userID, name)
	}
	return chars[0], nil
}

// ListByOwner returns the user's characters ordered by name
func (r *sqliteRepo) ListByOwner(ctx context.Context, userID string) ([]*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	chars, err := r.query(ctx, selectCharacterSQL("user_id = ?"), userID)
	if err != nil {
		return nil, err
	}
	sortByName(chars)
	return chars, nil
}

// Update rewrites the row and replaces skills and specialties
func (r *sqliteRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		values := characterValues(char, char.InDespair, toMillis(char.CreatedAt), toMillis(char.UpdatedAt))
		res, err := tx.ExecContext(ctx, updateCharacterSQL(questionPlaceholder), updateArgs(values)...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound(char.ID)
		}
		return r.writeChildren(ctx, tx, char)
	})
	switch {
	case err == nil:
		return nil
	case herr.IsNotFound(err):
		return err
	case sqlite.IsUniqueViolation(err):
		return nameTaken(char.Name)
	default:
		return herr.Wrap(err, "updating character").WithMeta("character_id", char.ID)
	}
}

// Delete removes the row; child rows and the active pointer cascade
func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return herr.InvalidArgument("character ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return herr.Wrap(err, "deleting character").WithMeta("character_id", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(id)
	}
	return nil
}

// SetActive upserts the user's active pointer
func (r *sqliteRepo) SetActive(ctx context.Context, userID, characterID string) error {
	if userID == "" || characterID == "" {
		return herr.InvalidArgument("user ID and character ID are required")
	}

	var owner string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM characters WHERE id = ?`, characterID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(characterID)
	}
	if err != nil {
		return herr.Wrap(err, "checking character owner")
	}
	if owner != userID {
		return notOwner(userID, characterID)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO active_characters (user_id, character_id) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET character_id = excluded.character_id`,
		userID, characterID)
	if err != nil {
		return herr.Wrap(err, "setting active character")
	}
	return nil
}

// GetActive returns the user's active character ID
func (r *sqliteRepo) GetActive(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", herr.InvalidArgument("user ID is required")
	}

	var id string
	err := r.db.QueryRowContext(ctx, `SELECT character_id FROM active_characters WHERE user_id = ?`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", noActive(userID)
	}
	if err != nil {
		return "", herr.Wrap(err, "getting active character")
	}
	return id, nil
}

func (r *sqliteRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *sqliteRepo) writeChildren(ctx context.Context, tx *sql.Tx, char *entities.Character) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM character_skills WHERE character_id = ?`, char.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM character_specialties WHERE character_id = ?`, char.ID); err != nil {
		return err
	}

	for _, skill := range entities.AllSkills() {
		dots, ok := char.Skills[skill]
		if !ok {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_skills (character_id, skill, dots) VALUES (?, ?, ?)`,
			char.ID, string(skill), dots); err != nil {
			return err
		}
	}
	for _, skill := range sortedSpecialtySkills(char) {
		for pos, name := range char.Specialties[skill] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO character_specialties (character_id, skill, name, position) VALUES (?, ?, ?, ?)`,
				char.ID, string(skill), name, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *sqliteRepo) query(ctx context.Context, query string, args ...any) ([]*entities.Character, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, herr.Wrap(err, "querying characters")
	}

	chars := make([]*entities.Character, 0)
	byID := make(map[string]*entities.Character)
	for rows.Next() {
		var (
			c       entities.Character
			attrs   [9]int
			creed   string
			created int64
			updated int64
		)
		if err := rows.Scan(characterDest(&c, &attrs, &creed, &c.InDespair, &created, &updated)...); err != nil {
			_ = rows.Close()
			return nil, herr.Wrap(err, "scanning character row")
		}
		applyAttributes(&c, attrs, creed)
		c.CreatedAt, c.UpdatedAt = fromMillis(created), fromMillis(updated)

		chars = append(chars, &c)
		byID[c.ID] = &c
	}
	// the single connection must be free before the child queries run
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, herr.Wrap(err, "reading character rows")
	}

	for _, c := range chars {
		if err := r.loadChildren(ctx, c); err != nil {
			return nil, err
		}
	}
	return chars, nil
}

func (r *sqliteRepo) loadChildren(ctx context.Context, c *entities.Character) error {
	rows, err := r.db.QueryContext(ctx, `SELECT skill, dots FROM character_skills WHERE character_id = ?`, c.ID)
	if err != nil {
		return herr.Wrap(err, "querying skills")
	}
	for rows.Next() {
		var skill string
		var dots int
		if err := rows.Scan(&skill, &dots); err != nil {
			_ = rows.Close()
			return herr.Wrap(err, "scanning skill row")
		}
		c.Skills[entities.Skill(skill)] = dots
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return herr.Wrap(err, "reading skill rows")
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT skill, name FROM character_specialties WHERE character_id = ? ORDER BY skill, position`, c.ID)
	if err != nil {
		return herr.Wrap(err, "querying specialties")
	}
	defer rows.Close()
	for rows.Next() {
		var skill, name string
		if err := rows.Scan(&skill, &name); err != nil {
			return herr.Wrap(err, "scanning specialty row")
		}
		c.Specialties[entities.Skill(skill)] = append(c.Specialties[entities.Skill(skill)], name)
	}
	if err := rows.Err(); err != nil {
		return herr.Wrap(err, "reading specialty rows")
	}
	return nil
}
