package services

import (
	"context"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripsServiceInterface interface {
	SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (uuid.UUID, error)
	ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.TripPlan, error)
	UpsertPreferences(ctx context.Context, userID uuid.UUID, request request_models.PreferenceRequest) error
	GetPreferences(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error)
	ListHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.QueryHistory, error)
}

type TripsService struct {
	tripRepo       repositories.TripRepository
	preferenceRepo repositories.PreferenceRepository
	historyRepo    repositories.HistoryRepository
}

func NewTripsService(tripRepo repositories.TripRepository, preferenceRepo repositories.PreferenceRepository, historyRepo repositories.HistoryRepository) TripsServiceInterface {
	return &TripsService{
		tripRepo:       tripRepo,
		preferenceRepo: preferenceRepo,
		historyRepo:    historyRepo,
	}
}

func (s *TripsService) SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (uuid.UUID, error) {
	if request.Destination == "" {
		return uuid.Nil, utils.ErrInvalidInput
	}

	trip := &db_models.TripPlan{
		UserID:      userID,
		Destination: request.Destination,
		Country:     request.Country,
		Days:        request.Days,
		Itinerary:   request.Itinerary,
		Activities:  pq.StringArray(request.Activities),
	}

	tripID, err := s.tripRepo.Insert(ctx, trip)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return tripID, nil
}

func (s *TripsService) ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.TripPlan, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripsService) UpsertPreferences(ctx context.Context, userID uuid.UUID, request request_models.PreferenceRequest) error {
	pref := &db_models.UserPreference{
		UserID:           userID,
		DestinationTypes: pq.StringArray(request.DestinationTypes),
		Activities:       pq.StringArray(request.Activities),
		BudgetCeiling:    request.BudgetCeiling,
	}

	if err := s.preferenceRepo.Upsert(ctx, pref); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripsService) GetPreferences(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error) {
	pref, err := s.preferenceRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pref, nil
}

func (s *TripsService) ListHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.QueryHistory, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}
