package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rolodex/internal/errs"
	"rolodex/internal/models"
)

type fakeProfessionalRepo struct {
	count       func(ctx context.Context) (int64, error)
	findFirst   func(ctx context.Context) (*models.Professional, error)
	insert      func(ctx context.Context, professional *models.Professional) error
	updateFirst func(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error)
	deleteFirst func(ctx context.Context) (*mongo.DeleteResult, error)
}

func (f *fakeProfessionalRepo) Count(ctx context.Context) (int64, error) {
	return f.count(ctx)
}

func (f *fakeProfessionalRepo) FindFirst(ctx context.Context) (*models.Professional, error) {
	return f.findFirst(ctx)
}

func (f *fakeProfessionalRepo) Insert(ctx context.Context, professional *models.Professional) error {
	return f.insert(ctx, professional)
}

func (f *fakeProfessionalRepo) UpdateFirst(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error) {
	return f.updateFirst(ctx, fields)
}

func (f *fakeProfessionalRepo) DeleteFirst(ctx context.Context) (*mongo.DeleteResult, error) {
	return f.deleteFirst(ctx)
}

func TestCreateProfessional(t *testing.T) {
	profile := models.Professional{
		ProfessionalName: "Ada Lovelace",
		Tagline:          "First programmer",
		Description:      "Wrote the first algorithm intended for a machine.",
	}

	t.Run("creates when the collection is empty", func(t *testing.T) {
		var inserted *models.Professional
		repo := &fakeProfessionalRepo{
			count: func(ctx context.Context) (int64, error) { return 0, nil },
			insert: func(ctx context.Context, p *models.Professional) error {
				inserted = p
				return nil
			},
		}
		svc := NewProfessionalService(repo)

		p := profile
		created, err := svc.CreateProfessional(context.Background(), &p)
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, created, inserted)
	})

	t.Run("rejects a second document regardless of payload", func(t *testing.T) {
		repo := &fakeProfessionalRepo{
			count: func(ctx context.Context) (int64, error) { return 1, nil },
		}
		svc := NewProfessionalService(repo)

		p := profile
		_, err := svc.CreateProfessional(context.Background(), &p)
		var conflict *errs.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})
}

func TestGetProfessional(t *testing.T) {
	repo := &fakeProfessionalRepo{
		findFirst: func(ctx context.Context) (*models.Professional, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewProfessionalService(repo)

	_, err := svc.GetProfessional(context.Background())
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestUpdateProfessional(t *testing.T) {
	t.Run("empty update is a validation error", func(t *testing.T) {
		svc := NewProfessionalService(&fakeProfessionalRepo{})

		_, _, err := svc.UpdateProfessional(context.Background(), models.ProfessionalUpdate{})
		var validationErr *errs.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("targets the singleton without a filter", func(t *testing.T) {
		tagline := "Still the first programmer"
		var gotFields bson.M
		repo := &fakeProfessionalRepo{
			updateFirst: func(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error) {
				gotFields = fields
				return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
			findFirst: func(ctx context.Context) (*models.Professional, error) {
				return &models.Professional{Tagline: tagline}, nil
			},
		}
		svc := NewProfessionalService(repo)

		updated, modified, err := svc.UpdateProfessional(context.Background(), models.ProfessionalUpdate{Tagline: &tagline})
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, bson.M{"tagline": tagline}, gotFields)
		assert.Equal(t, tagline, updated.Tagline)
	})

	t.Run("empty collection is not found", func(t *testing.T) {
		tagline := "Anything valid here"
		repo := &fakeProfessionalRepo{
			updateFirst: func(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error) {
				return &mongo.UpdateResult{MatchedCount: 0}, nil
			},
		}
		svc := NewProfessionalService(repo)

		_, _, err := svc.UpdateProfessional(context.Background(), models.ProfessionalUpdate{Tagline: &tagline})
		var notFound *errs.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestDeleteProfessional(t *testing.T) {
	repo := &fakeProfessionalRepo{
		deleteFirst: func(ctx context.Context) (*mongo.DeleteResult, error) {
			return &mongo.DeleteResult{DeletedCount: 0}, nil
		},
	}
	svc := NewProfessionalService(repo)

	err := svc.DeleteProfessional(context.Background())
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
