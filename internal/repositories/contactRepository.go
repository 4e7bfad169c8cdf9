package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rolodex/internal/database"
	"rolodex/internal/models"
	"rolodex/internal/utils"
)

// ContactRepository issues exactly one Mongo operation per method.
type ContactRepository interface {
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	FindByEmail(ctx context.Context, email string) (*models.Contact, error)
	Insert(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type contactRepository struct {
	db database.Service
}

func NewContactRepository(db database.Service) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionContacts)
}

func (r *contactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	queryType := "findAll"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to query contacts")
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to decode contacts")
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	queryType := "findById"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var contact models.Contact
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err // Can be mongo.ErrNoDocuments
	}
	return &contact, nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string) (*models.Contact, error) {
	queryType := "findByEmail"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var contact models.Contact
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&contact)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err // Can be mongo.ErrNoDocuments
	}
	return &contact, nil
}

func (r *contactRepository) Insert(ctx context.Context, contact *models.Contact) error {
	queryType := "insert"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	_, err := r.collection().InsertOne(ctx, contact)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("email", contact.Email).Msg("Failed to insert contact")
		return err
	}
	return nil
}

func (r *contactRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	queryType := "update"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("contact_id", id.Hex()).Msg("Failed to update contact")
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	queryType := "delete"
	repository := "contact"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("contact_id", id.Hex()).Msg("Failed to delete contact")
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}
	return result, nil
}
