package repository

import (
	"database/sql"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
)

type CommentRepository interface {
	CreateComment(c *entity.Comment) error
	GetCommentByID(id uuid.UUID) (*entity.Comment, error)
	GetCommentsByListing(listingID uuid.UUID) ([]entity.Comment, error)
	GetCommentsByAuthor(authorID uuid.UUID) ([]entity.Comment, error)
	CountByListing(listingID uuid.UUID) (int64, error)
	UpdateComment(c *entity.Comment) error
	DeleteComment(id uuid.UUID) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `id, text, author_id, listing_id, rating, created_at`

func (r *commentRepository) CreateComment(c *entity.Comment) error {
	query := `
		INSERT INTO comments (id, text, author_id, listing_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(query, c.ID, c.Text, c.AuthorID, c.ListingID, c.Rating)
	return err
}

func (r *commentRepository) GetCommentByID(id uuid.UUID) (*entity.Comment, error) {
	var c entity.Comment
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&c.ID, &c.Text, &c.AuthorID, &c.ListingID, &c.Rating, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) GetCommentsByListing(listingID uuid.UUID) ([]entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE listing_id = $1 ORDER BY created_at ASC`
	return r.queryComments(query, listingID)
}

func (r *commentRepository) GetCommentsByAuthor(authorID uuid.UUID) ([]entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE author_id = $1 ORDER BY created_at DESC`
	return r.queryComments(query, authorID)
}

func (r *commentRepository) queryComments(query string, arg interface{}) ([]entity.Comment, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []entity.Comment
	for rows.Next() {
		var c entity.Comment
		err := rows.Scan(&c.ID, &c.Text, &c.AuthorID, &c.ListingID, &c.Rating, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) CountByListing(listingID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM comments WHERE listing_id = $1`, listingID).Scan(&count)
	return count, err
}

func (r *commentRepository) UpdateComment(c *entity.Comment) error {
	query := `UPDATE comments SET text = $1, rating = $2 WHERE id = $3`
	_, err := r.db.Exec(query, c.Text, c.Rating, c.ID)
	return err
}

func (r *commentRepository) DeleteComment(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	return err
}
