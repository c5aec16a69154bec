package repository

import (
	"database/sql"

	entity "tradepost/internal/domain"
)

type StateRepository interface {
	GetAllStates() ([]entity.State, error)
	GetStateByID(id int) (*entity.State, error)
	SeedStates(states []entity.State) error
}

type stateRepository struct {
	db *sql.DB
}

func NewStateRepository(db *sql.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) GetAllStates() ([]entity.State, error) {
	rows, err := r.db.Query(`SELECT id, name FROM states ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []entity.State
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *stateRepository) GetStateByID(id int) (*entity.State, error) {
	var s entity.State
	err := r.db.QueryRow(`SELECT id, name FROM states WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SeedStates inserts catalog rows that are not present yet. Run once at
// startup so every state id the workflow engine references actually exists.
func (r *stateRepository) SeedStates(states []entity.State) error {
	query := `INSERT INTO states (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
	for _, s := range states {
		if _, err := r.db.Exec(query, s.ID, s.Name); err != nil {
			return err
		}
	}
	return nil
}
