package service

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	entity "tradepost/internal/domain"
	mongorepo "tradepost/internal/repository/mongodb"
	repo "tradepost/internal/repository/postgresql"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- ERROR DEFINITIONS ---
var (
	ErrExchangeNotFound    = fmt.Errorf("exchange not found: %w", entity.ErrNotFound)
	ErrListingNotFound     = fmt.Errorf("listing not found: %w", entity.ErrNotFound)
	ErrStateNotConfigured  = fmt.Errorf("availability state not configured: %w", entity.ErrNotFound)
	ErrSameListing         = fmt.Errorf("requested and offered listings must differ: %w", entity.ErrValidation)
	ErrNotOfferedOwner     = fmt.Errorf("you can only offer your own listings: %w", entity.ErrValidation)
	ErrOwnListingRequested = fmt.Errorf("you cannot trade for your own listing: %w", entity.ErrValidation)
	ErrListingNotPublished = fmt.Errorf("both listings must be published: %w", entity.ErrValidation)
	ErrUnknownRequester    = fmt.Errorf("requesting user does not exist: %w", entity.ErrValidation)
	ErrPendingExists       = fmt.Errorf("a pending exchange already exists for these listings: %w", entity.ErrConflict)
	ErrExchangeNotPending  = fmt.Errorf("only pending exchanges can be answered: %w", entity.ErrInvalidState)
	ErrExchangeNotAccepted = fmt.Errorf("only accepted exchanges can be confirmed or reverted: %w", entity.ErrInvalidState)
	ErrNotParticipant      = fmt.Errorf("you are not a participant of this exchange: %w", entity.ErrUnauthorized)
)

// UserExistenceChecker is the capability this service needs from the external
// user directory.
type UserExistenceChecker interface {
	UserExists(userID uuid.UUID) (bool, error)
}

// ExchangeService drives the barter negotiation workflow: proposal, owner
// accept/reject with cascade rejection of competing offers, and the two-sided
// confirmation handshake that finalizes or cancels an accepted trade.
type ExchangeService struct {
	exchangeRepo repo.ExchangeRepository
	listingRepo  repo.ListingRepository
	stateRepo    repo.StateRepository
	logRepo      mongorepo.LogRepository
	users        UserExistenceChecker
	states       entity.StateIDs
}

func NewExchangeService(
	exchangeRepo repo.ExchangeRepository,
	listingRepo repo.ListingRepository,
	stateRepo repo.StateRepository,
	logRepo mongorepo.LogRepository,
	users UserExistenceChecker,
	states entity.StateIDs,
) *ExchangeService {
	return &ExchangeService{
		exchangeRepo: exchangeRepo,
		listingRepo:  listingRepo,
		stateRepo:    stateRepo,
		logRepo:      logRepo,
		users:        users,
		states:       states,
	}
}

// --- HELPER FUNCTIONS ---

func (s *ExchangeService) saveHistory(exchangeID uuid.UUID, oldStatus, newStatus string, changedBy uuid.UUID) {
	doc := &entity.StatusHistory{
		ID:          primitive.NewObjectID(),
		RelatedID:   exchangeID.String(),
		RelatedType: "exchange",
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy.String(),
		Timestamp:   time.Now(),
	}
	if err := s.logRepo.SaveHistoryStatus(doc); err != nil {
		log.Printf("Warning: failed to save history status for exchange %s: %v", exchangeID.String(), err)
	}
}

func (s *ExchangeService) createAndSaveNotification(userID uuid.UUID, title string, message string, notiType string, relatedID uuid.UUID) {
	noti := &entity.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notiType,
		RelatedID: relatedID,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.logRepo.SaveNotification(noti); err != nil {
		log.Printf("Warning: failed to save notification for user %s: %v", userID.String(), err)
	}
}

// --- EXCHANGE SERVICE METHODS ---

// CreateExchange validates and persists a new barter proposal. No listing
// state is mutated yet; both listings stay published until the owner accepts.
func (s *ExchangeService) CreateExchange(requesterID uuid.UUID, input entity.CreateExchangeInput) (*entity.Exchange, error) {
	requestedID, err := uuid.Parse(input.RequestedListingID)
	if err != nil {
		return nil, fmt.Errorf("invalid requested_listing_id: %w", entity.ErrValidation)
	}
	offeredID, err := uuid.Parse(input.OfferedListingID)
	if err != nil {
		return nil, fmt.Errorf("invalid offered_listing_id: %w", entity.ErrValidation)
	}
	if requestedID == offeredID {
		return nil, ErrSameListing
	}

	exists, err := s.exchangeRepo.ExistsPendingBetween(requestedID, offeredID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPendingExists
	}

	requested, err := s.listingRepo.GetListingByID(requestedID)
	if err != nil {
		return nil, err
	}
	if requested == nil {
		return nil, ErrListingNotFound
	}
	offered, err := s.listingRepo.GetListingByID(offeredID)
	if err != nil {
		return nil, err
	}
	if offered == nil {
		return nil, ErrListingNotFound
	}

	if offered.AuthorID != requesterID {
		return nil, ErrNotOfferedOwner
	}
	if requested.AuthorID == requesterID {
		return nil, ErrOwnListingRequested
	}
	if requested.StateID != s.states.Published || offered.StateID != s.states.Published {
		return nil, ErrListingNotPublished
	}

	if ok, err := s.users.UserExists(requesterID); err != nil || !ok {
		if err != nil {
			log.Printf("Warning: user existence check failed for %s: %v", requesterID.String(), err)
		}
		return nil, ErrUnknownRequester
	}

	exchange := &entity.Exchange{
		ID:                    uuid.New(),
		RequestedListingID:    requestedID,
		OfferedListingID:      offeredID,
		RequesterID:           requesterID,
		OwnerID:               requested.AuthorID,
		Status:                entity.ExchangeStatusPending,
		RequesterConfirmation: entity.ConfirmationPending,
		OwnerConfirmation:     entity.ConfirmationPending,
		CreatedAt:             time.Now(),
	}
	if err := s.exchangeRepo.CreateExchange(exchange); err != nil {
		return nil, err
	}

	s.saveHistory(exchange.ID, "", entity.ExchangeStatusPending, requesterID)
	s.createAndSaveNotification(exchange.OwnerID, "New exchange offer",
		fmt.Sprintf("Someone offered '%s' in exchange for your listing '%s'.", offered.Title, requested.Title),
		"exchange", exchange.ID)

	return exchange, nil
}

// AcceptExchange locks both listings, marks the exchange accepted and rejects
// every competing pending offer on the same requested listing. The whole
// effect is applied by one repository transaction; the first accept to commit
// wins, a concurrent sibling accept fails its status guard.
func (s *ExchangeService) AcceptExchange(exchangeID uuid.UUID) (*entity.Exchange, error) {
	exchange, err := s.exchangeRepo.GetExchangeByID(exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange == nil {
		return nil, ErrExchangeNotFound
	}
	if exchange.Status != entity.ExchangeStatusPending {
		return nil, ErrExchangeNotPending
	}

	inProcess, err := s.stateRepo.GetStateByID(s.states.InProcess)
	if err != nil {
		return nil, err
	}
	if inProcess == nil {
		return nil, ErrStateNotConfigured
	}

	// Collected before the cascade so their requesters can be told afterwards.
	siblings, err := s.exchangeRepo.FindPendingByRequestedListing(exchange.RequestedListingID)
	if err != nil {
		return nil, err
	}

	exchange.Status = entity.ExchangeStatusAccepted
	exchange.RespondedAt = sql.NullTime{Time: time.Now(), Valid: true}

	if err := s.exchangeRepo.AcceptExchangeTransaction(exchange, inProcess.ID); err != nil {
		return nil, err
	}

	s.saveHistory(exchange.ID, entity.ExchangeStatusPending, entity.ExchangeStatusAccepted, exchange.OwnerID)
	s.createAndSaveNotification(exchange.RequesterID, "Exchange offer accepted",
		"Your exchange offer was accepted. Confirm the trade to finalize it.",
		"exchange_status", exchange.ID)

	for _, sibling := range siblings {
		if sibling.ID == exchange.ID {
			continue
		}
		s.saveHistory(sibling.ID, entity.ExchangeStatusPending, entity.ExchangeStatusRejected, exchange.OwnerID)
		s.createAndSaveNotification(sibling.RequesterID, "Exchange offer rejected",
			"Your exchange offer was rejected because another offer on the listing was accepted.",
			"exchange_status", sibling.ID)
	}

	return exchange, nil
}

// RejectExchange declines a pending proposal. Listings never left the
// published state, so there is nothing to restore.
func (s *ExchangeService) RejectExchange(exchangeID uuid.UUID) (*entity.Exchange, error) {
	exchange, err := s.exchangeRepo.GetExchangeByID(exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange == nil {
		return nil, ErrExchangeNotFound
	}
	if exchange.Status != entity.ExchangeStatusPending {
		return nil, ErrExchangeNotPending
	}

	exchange.Status = entity.ExchangeStatusRejected
	exchange.RespondedAt = sql.NullTime{Time: time.Now(), Valid: true}

	if err := s.exchangeRepo.MarkRejected(exchange); err != nil {
		return nil, err
	}

	s.saveHistory(exchange.ID, entity.ExchangeStatusPending, entity.ExchangeStatusRejected, exchange.OwnerID)
	s.createAndSaveNotification(exchange.RequesterID, "Exchange offer rejected",
		"The owner rejected your exchange offer.", "exchange_status", exchange.ID)

	return exchange, nil
}

// ConfirmExchange records one participant's confirmation. Once both sides
// have confirmed, both listings move to the approved state; calling confirm
// again after that is a no-op success.
func (s *ExchangeService) ConfirmExchange(exchangeID, userID uuid.UUID) (*entity.Exchange, error) {
	exchange, err := s.exchangeRepo.GetExchangeByID(exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange == nil {
		return nil, ErrExchangeNotFound
	}
	if exchange.Status != entity.ExchangeStatusAccepted {
		return nil, ErrExchangeNotAccepted
	}
	if !exchange.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}

	alreadyFinal := exchange.FullyConfirmed()

	updated, err := s.exchangeRepo.ConfirmExchangeTransaction(exchangeID, userID == exchange.OwnerID, s.states.Approved)
	if err != nil {
		return nil, err
	}

	if updated.FullyConfirmed() && !alreadyFinal {
		s.createAndSaveNotification(updated.RequesterID, "Exchange completed",
			"Both parties confirmed; the trade is finalized.", "exchange_status", updated.ID)
		s.createAndSaveNotification(updated.OwnerID, "Exchange completed",
			"Both parties confirmed; the trade is finalized.", "exchange_status", updated.ID)
	}

	return updated, nil
}

// RevertExchange is the one-way trapdoor out of an accepted trade: the caller
// backs out, the exchange is cancelled and both listings return to published.
func (s *ExchangeService) RevertExchange(exchangeID, userID uuid.UUID) (*entity.Exchange, error) {
	exchange, err := s.exchangeRepo.GetExchangeByID(exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange == nil {
		return nil, ErrExchangeNotFound
	}
	if exchange.Status != entity.ExchangeStatusAccepted {
		return nil, ErrExchangeNotAccepted
	}
	if !exchange.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}

	updated, err := s.exchangeRepo.RevertExchangeTransaction(exchangeID, userID == exchange.OwnerID, s.states.Published)
	if err != nil {
		return nil, err
	}

	s.saveHistory(updated.ID, entity.ExchangeStatusAccepted, entity.ExchangeStatusCancelled, userID)
	other := updated.RequesterID
	if userID == updated.RequesterID {
		other = updated.OwnerID
	}
	s.createAndSaveNotification(other, "Exchange cancelled",
		"The other party backed out; the trade was cancelled and both listings are published again.",
		"exchange_status", updated.ID)

	return updated, nil
}

// GetReceivedExchanges lists open exchanges targeting the user's listings.
func (s *ExchangeService) GetReceivedExchanges(userID uuid.UUID) ([]entity.ExchangeResponse, error) {
	exchanges, err := s.exchangeRepo.FindByParticipant(userID, true, openStatuses())
	if err != nil {
		return nil, err
	}
	return s.toResponses(exchanges)
}

// GetSentExchanges lists open exchanges the user proposed.
func (s *ExchangeService) GetSentExchanges(userID uuid.UUID) ([]entity.ExchangeResponse, error) {
	exchanges, err := s.exchangeRepo.FindByParticipant(userID, false, openStatuses())
	if err != nil {
		return nil, err
	}
	return s.toResponses(exchanges)
}

func openStatuses() []string {
	return []string{entity.ExchangeStatusPending, entity.ExchangeStatusAccepted}
}

func (s *ExchangeService) toResponses(exchanges []entity.Exchange) ([]entity.ExchangeResponse, error) {
	responses := make([]entity.ExchangeResponse, 0, len(exchanges))
	for i := range exchanges {
		resp, err := s.toResponse(&exchanges[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *ExchangeService) toResponse(e *entity.Exchange) (*entity.ExchangeResponse, error) {
	requested, err := s.listingRepo.GetListingByID(e.RequestedListingID)
	if err != nil {
		return nil, err
	}
	offered, err := s.listingRepo.GetListingByID(e.OfferedListingID)
	if err != nil {
		return nil, err
	}

	resp := &entity.ExchangeResponse{
		ID:                    e.ID,
		RequestedListing:      requested,
		OfferedListing:        offered,
		RequesterID:           e.RequesterID,
		OwnerID:               e.OwnerID,
		RequesterLabel:        fmt.Sprintf("User %s", e.RequesterID.String()),
		OwnerLabel:            fmt.Sprintf("User %s", e.OwnerID.String()),
		Status:                e.Status,
		RequesterConfirmation: e.RequesterConfirmation,
		OwnerConfirmation:     e.OwnerConfirmation,
		CreatedAt:             e.CreatedAt,
	}
	if e.RespondedAt.Valid {
		t := e.RespondedAt.Time
		resp.RespondedAt = &t
	}
	return resp, nil
}
