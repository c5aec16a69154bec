package repository

import (
	"database/sql"
	"fmt"

	entity "tradepost/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ExchangeRepository interface {
	CreateExchange(e *entity.Exchange) error
	GetExchangeByID(id uuid.UUID) (*entity.Exchange, error)
	ExistsPendingBetween(requestedID, offeredID uuid.UUID) (bool, error)
	FindPendingByRequestedListing(listingID uuid.UUID) ([]entity.Exchange, error)
	FindByParticipant(userID uuid.UUID, asOwner bool, statuses []string) ([]entity.Exchange, error)
	MarkRejected(e *entity.Exchange) error
	AcceptExchangeTransaction(e *entity.Exchange, inProcessStateID int) error
	ConfirmExchangeTransaction(id uuid.UUID, asOwner bool, approvedStateID int) (*entity.Exchange, error)
	RevertExchangeTransaction(id uuid.UUID, asOwner bool, publishedStateID int) (*entity.Exchange, error)
}

type exchangeRepository struct {
	db *sql.DB
}

func NewExchangeRepository(db *sql.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

const exchangeColumns = `id, requested_listing_id, offered_listing_id, requester_id, owner_id,
		status, requester_confirmation, owner_confirmation, created_at, responded_at`

func scanExchange(row interface{ Scan(...interface{}) error }) (*entity.Exchange, error) {
	var e entity.Exchange
	err := row.Scan(
		&e.ID, &e.RequestedListingID, &e.OfferedListingID, &e.RequesterID, &e.OwnerID,
		&e.Status, &e.RequesterConfirmation, &e.OwnerConfirmation, &e.CreatedAt, &e.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *exchangeRepository) CreateExchange(e *entity.Exchange) error {
	query := `
		INSERT INTO exchanges (id, requested_listing_id, offered_listing_id, requester_id, owner_id,
			status, requester_confirmation, owner_confirmation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(query,
		e.ID, e.RequestedListingID, e.OfferedListingID, e.RequesterID, e.OwnerID,
		e.Status, e.RequesterConfirmation, e.OwnerConfirmation,
	)
	return err
}

func (r *exchangeRepository) GetExchangeByID(id uuid.UUID) (*entity.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE id = $1`
	e, err := scanExchange(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (r *exchangeRepository) ExistsPendingBetween(requestedID, offeredID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM exchanges
			WHERE requested_listing_id = $1 AND offered_listing_id = $2 AND status = $3
		)
	`
	err := r.db.QueryRow(query, requestedID, offeredID, entity.ExchangeStatusPending).Scan(&exists)
	return exists, err
}

func (r *exchangeRepository) FindPendingByRequestedListing(listingID uuid.UUID) ([]entity.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE requested_listing_id = $1 AND status = $2`
	rows, err := r.db.Query(query, listingID, entity.ExchangeStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExchanges(rows)
}

func (r *exchangeRepository) FindByParticipant(userID uuid.UUID, asOwner bool, statuses []string) ([]entity.Exchange, error) {
	column := "requester_id"
	if asOwner {
		column = "owner_id"
	}
	query := fmt.Sprintf(`SELECT `+exchangeColumns+`
		FROM exchanges WHERE %s = $1 AND status = ANY($2) ORDER BY created_at DESC`, column)
	rows, err := r.db.Query(query, userID, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExchanges(rows)
}

func collectExchanges(rows *sql.Rows) ([]entity.Exchange, error) {
	var exchanges []entity.Exchange
	for rows.Next() {
		e, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, *e)
	}
	return exchanges, rows.Err()
}

// MarkRejected moves a pending exchange to rejected. The status guard in the
// WHERE clause keeps a concurrent accept from being overwritten.
func (r *exchangeRepository) MarkRejected(e *entity.Exchange) error {
	query := `UPDATE exchanges SET status = $1, responded_at = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.Exec(query, entity.ExchangeStatusRejected, e.RespondedAt.Time, e.ID, entity.ExchangeStatusPending)
	if err != nil {
		return err
	}
	return requireRow(res, "exchange is not pending")
}

// AcceptExchangeTransaction applies the composite accept effect as one unit:
// the exchange moves pending -> accepted, both listings move to the in-process
// state, and every other pending exchange on the same requested listing is
// rejected. The first UPDATE doubles as the compare-and-swap; a concurrent
// accept on a sibling exchange loses the race and gets ErrInvalidState.
func (r *exchangeRepository) AcceptExchangeTransaction(e *entity.Exchange, inProcessStateID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(
		`UPDATE exchanges SET status = $1, responded_at = $2 WHERE id = $3 AND status = $4`,
		entity.ExchangeStatusAccepted, e.RespondedAt.Time, e.ID, entity.ExchangeStatusPending,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := requireRow(res, "exchange is not pending"); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(
		`UPDATE listings SET state_id = $1 WHERE id IN ($2, $3)`,
		inProcessStateID, e.RequestedListingID, e.OfferedListingID,
	); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(
		`UPDATE exchanges SET status = $1, responded_at = $2
			WHERE requested_listing_id = $3 AND status = $4 AND id <> $5`,
		entity.ExchangeStatusRejected, e.RespondedAt.Time,
		e.RequestedListingID, entity.ExchangeStatusPending, e.ID,
	); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ConfirmExchangeTransaction records one participant's confirmation and, when
// both sides have confirmed, moves both listings to the approved state in the
// same transaction. Re-applying after full confirmation is harmless.
func (r *exchangeRepository) ConfirmExchangeTransaction(id uuid.UUID, asOwner bool, approvedStateID int) (*entity.Exchange, error) {
	return r.confirmationTransaction(id, asOwner, entity.ConfirmationConfirmed, approvedStateID, false)
}

// RevertExchangeTransaction records one participant's reversal, cancels the
// exchange and returns both listings to the published state, all as one unit.
func (r *exchangeRepository) RevertExchangeTransaction(id uuid.UUID, asOwner bool, publishedStateID int) (*entity.Exchange, error) {
	return r.confirmationTransaction(id, asOwner, entity.ConfirmationReverted, publishedStateID, true)
}

func (r *exchangeRepository) confirmationTransaction(id uuid.UUID, asOwner bool, value string, stateID int, cancel bool) (*entity.Exchange, error) {
	column := "requester_confirmation"
	if asOwner {
		column = "owner_confirmation"
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}

	res, err := tx.Exec(
		fmt.Sprintf(`UPDATE exchanges SET %s = $1 WHERE id = $2 AND status = $3`, column),
		value, id, entity.ExchangeStatusAccepted,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := requireRow(res, "exchange is not accepted"); err != nil {
		tx.Rollback()
		return nil, err
	}

	e, err := scanExchange(tx.QueryRow(`SELECT `+exchangeColumns+` FROM exchanges WHERE id = $1`, id))
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if cancel {
		if _, err := tx.Exec(
			`UPDATE exchanges SET status = $1 WHERE id = $2`, entity.ExchangeStatusCancelled, id,
		); err != nil {
			tx.Rollback()
			return nil, err
		}
		e.Status = entity.ExchangeStatusCancelled
	}

	if cancel || e.FullyConfirmed() {
		if _, err := tx.Exec(
			`UPDATE listings SET state_id = $1 WHERE id IN ($2, $3)`,
			stateID, e.RequestedListingID, e.OfferedListingID,
		); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return e, nil
}

func requireRow(res sql.Result, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", msg, entity.ErrInvalidState)
	}
	return nil
}
