package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rolodex/internal/database"
	"rolodex/internal/models"
	"rolodex/internal/utils"
)

// ProfessionalRepository accesses the singleton professional collection.
// The filter-less methods target whatever single document exists.
type ProfessionalRepository interface {
	Count(ctx context.Context) (int64, error)
	FindFirst(ctx context.Context) (*models.Professional, error)
	Insert(ctx context.Context, professional *models.Professional) error
	UpdateFirst(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error)
	DeleteFirst(ctx context.Context) (*mongo.DeleteResult, error)
}

type professionalRepository struct {
	db database.Service
}

func NewProfessionalRepository(db database.Service) ProfessionalRepository {
	return &professionalRepository{db: db}
}

func (r *professionalRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionProfessional)
}

func (r *professionalRepository) Count(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "professional"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to count professional documents")
		return 0, fmt.Errorf("failed to count professional documents: %w", err)
	}
	return count, nil
}

func (r *professionalRepository) FindFirst(ctx context.Context) (*models.Professional, error) {
	queryType := "findFirst"
	repository := "professional"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var professional models.Professional
	err := r.collection().FindOne(ctx, bson.M{}).Decode(&professional)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err // Can be mongo.ErrNoDocuments
	}
	return &professional, nil
}

func (r *professionalRepository) Insert(ctx context.Context, professional *models.Professional) error {
	queryType := "insert"
	repository := "professional"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	_, err := r.collection().InsertOne(ctx, professional)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to insert professional document")
		return err
	}
	return nil
}

func (r *professionalRepository) UpdateFirst(ctx context.Context, fields bson.M) (*mongo.UpdateResult, error) {
	queryType := "updateFirst"
	repository := "professional"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().UpdateOne(ctx, bson.M{}, bson.M{"$set": fields})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to update professional document")
		return nil, err
	}
	return result, nil
}

func (r *professionalRepository) DeleteFirst(ctx context.Context) (*mongo.DeleteResult, error) {
	queryType := "deleteFirst"
	repository := "professional"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().DeleteOne(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to delete professional document")
		return nil, fmt.Errorf("failed to delete professional document: %w", err)
	}
	return result, nil
}
