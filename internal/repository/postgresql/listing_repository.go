package repository

import (
	"database/sql"
	"fmt"
	"strings"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
)

type ListingRepository interface {
	CreateListing(l *entity.Listing) error
	GetListingByID(id uuid.UUID) (*entity.Listing, error)
	GetAllListings(filter entity.ListingFilter) ([]entity.Listing, error)
	GetListingsByAuthor(authorID uuid.UUID) ([]entity.Listing, error)
	UpdateListing(l *entity.Listing) error
	DeleteListing(id uuid.UUID) error
}

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, title, description, price, author_id, state_id, created_at`

func (r *listingRepository) CreateListing(l *entity.Listing) error {
	query := `
		INSERT INTO listings (id, title, description, price, author_id, state_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(query, l.ID, l.Title, l.Description, l.Price, l.AuthorID, l.StateID)
	return err
}

func (r *listingRepository) GetListingByID(id uuid.UUID) (*entity.Listing, error) {
	var l entity.Listing
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&l.ID, &l.Title, &l.Description, &l.Price, &l.AuthorID, &l.StateID, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepository) GetAllListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	args := []interface{}{}
	whereClauses := []string{}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		whereClauses = append(whereClauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *listingRepository) GetListingsByAuthor(authorID uuid.UUID) ([]entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE author_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func collectListings(rows *sql.Rows) ([]entity.Listing, error) {
	var listings []entity.Listing
	for rows.Next() {
		var l entity.Listing
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Price, &l.AuthorID, &l.StateID, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) UpdateListing(l *entity.Listing) error {
	query := `
		UPDATE listings SET title = $1, description = $2, price = $3, state_id = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(query, l.Title, l.Description, l.Price, l.StateID, l.ID)
	return err
}

func (r *listingRepository) DeleteListing(id uuid.UUID) error {
	query := `DELETE FROM listings WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
