package service

import (
	"fmt"
	"log"
	"time"

	entity "tradepost/internal/domain"
	repo "tradepost/internal/repository/postgresql"

	"github.com/google/uuid"
)

var ErrUnknownAuthor = fmt.Errorf("author does not exist: %w", entity.ErrValidation)

type ListingService struct {
	listingRepo repo.ListingRepository
	users       UserExistenceChecker
	states      entity.StateIDs
}

func NewListingService(listingRepo repo.ListingRepository, users UserExistenceChecker, states entity.StateIDs) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		users:       users,
		states:      states,
	}
}

// CreateListing publishes a new listing. New listings always start in the
// published state; drafts are not part of this service.
func (s *ListingService) CreateListing(authorID uuid.UUID, input entity.CreateListingInput) (*entity.Listing, error) {
	if ok, err := s.users.UserExists(authorID); err != nil || !ok {
		if err != nil {
			log.Printf("Warning: user existence check failed for %s: %v", authorID.String(), err)
		}
		return nil, ErrUnknownAuthor
	}

	listing := &entity.Listing{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		AuthorID:    authorID,
		StateID:     s.states.Published,
		CreatedAt:   time.Now(),
	}
	if err := s.listingRepo.CreateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) GetAllListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	return s.listingRepo.GetAllListings(filter)
}

func (s *ListingService) GetListingByID(id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

func (s *ListingService) GetListingsByAuthor(authorID uuid.UUID) ([]entity.Listing, error) {
	return s.listingRepo.GetListingsByAuthor(authorID)
}

func (s *ListingService) UpdateListing(id uuid.UUID, input entity.UpdateListingInput) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.Price > 0 {
		listing.Price = input.Price
	}
	if input.StateID > 0 {
		listing.StateID = input.StateID
	}

	if err := s.listingRepo.UpdateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) DeleteListing(id uuid.UUID) error {
	listing, err := s.listingRepo.GetListingByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	return s.listingRepo.DeleteListing(id)
}
