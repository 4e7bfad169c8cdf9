package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rolodex/internal/errs"
	"rolodex/internal/models"
	"rolodex/internal/repositories"
)

// ProfessionalService enforces the singleton invariant: the collection
// holds at most one document, so creation probes for existence first and
// update/delete target the sole document without a filter.
type ProfessionalService interface {
	GetProfessional(ctx context.Context) (*models.Professional, error)
	CreateProfessional(ctx context.Context, professional *models.Professional) (*models.Professional, error)
	UpdateProfessional(ctx context.Context, update models.ProfessionalUpdate) (*models.Professional, bool, error)
	DeleteProfessional(ctx context.Context) error
}

type professionalServiceImpl struct {
	professionalRepo repositories.ProfessionalRepository
}

func NewProfessionalService(professionalRepo repositories.ProfessionalRepository) ProfessionalService {
	return &professionalServiceImpl{professionalRepo: professionalRepo}
}

func (s *professionalServiceImpl) GetProfessional(ctx context.Context) (*models.Professional, error) {
	professional, err := s.professionalRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("professional profile")
		}
		return nil, errs.Store("find professional profile", err)
	}
	return professional, nil
}

func (s *professionalServiceImpl) CreateProfessional(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	count, err := s.professionalRepo.Count(ctx)
	if err != nil {
		return nil, errs.Store("probe professional collection", err)
	}
	if count > 0 {
		log.Warn().Msg("Professional profile already exists, rejecting create")
		return nil, errs.Conflict("a professional profile already exists")
	}

	professional.ID = primitive.NewObjectID()
	if err := s.professionalRepo.Insert(ctx, professional); err != nil {
		return nil, errs.Store("insert professional profile", err)
	}

	log.Info().Str("professional_id", professional.ID.Hex()).Msg("Professional profile created")
	return professional, nil
}

func buildProfessionalUpdateFields(update models.ProfessionalUpdate) bson.M {
	fields := bson.M{}
	if update.ProfessionalName != nil {
		fields["professionalName"] = *update.ProfessionalName
	}
	if update.Tagline != nil {
		fields["tagline"] = *update.Tagline
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Base64Image != nil {
		fields["base64Image"] = *update.Base64Image
	}
	if update.ProudOf != nil {
		fields["proudOf"] = *update.ProudOf
	}
	if update.Collaboration != nil {
		fields["collaboration"] = *update.Collaboration
	}
	if update.CurrentFocus != nil {
		fields["currentFocus"] = *update.CurrentFocus
	}
	if update.CurrentLearning != nil {
		fields["currentLearning"] = *update.CurrentLearning
	}
	return fields
}

func (s *professionalServiceImpl) UpdateProfessional(ctx context.Context, update models.ProfessionalUpdate) (*models.Professional, bool, error) {
	fields := buildProfessionalUpdateFields(update)
	if len(fields) == 0 {
		return nil, false, errs.Validation("no fields to update")
	}

	result, err := s.professionalRepo.UpdateFirst(ctx, fields)
	if err != nil {
		return nil, false, errs.Store("update professional profile", err)
	}
	if result.MatchedCount == 0 {
		return nil, false, errs.NotFound("professional profile")
	}

	professional, err := s.professionalRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, errs.NotFound("professional profile")
		}
		return nil, false, errs.Store("reload professional profile", err)
	}

	return professional, result.ModifiedCount > 0, nil
}

func (s *professionalServiceImpl) DeleteProfessional(ctx context.Context) error {
	result, err := s.professionalRepo.DeleteFirst(ctx)
	if err != nil {
		return errs.Store("delete professional profile", err)
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("professional profile")
	}
	log.Info().Msg("Professional profile deleted")
	return nil
}
