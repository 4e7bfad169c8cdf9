package database

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. The users collection is configurable because the
// deployment historically shared it with another service.
const (
	CollectionContacts     = "contacts"
	CollectionProfessional = "professional"
	defaultUserCollection  = "users"
	defaultDatabaseName    = "rolodex"
)

type Service interface {
	Health() map[string]string
	Client() *mongo.Client
	Collection(name string) *mongo.Collection
	UserCollectionName() string
	EnsureIndexes(ctx context.Context) error
	Close() error
}

type service struct {
	db             *mongo.Client
	dbName         string
	userCollection string
}

// New opens the single Mongo connection used by every request handler.
// There is no retry or reconnect policy: a missing URI or failed connect
// is fatal, the process never serves without a store.
func New() Service {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal().Msg("MONGODB_URI environment variable not set")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = defaultDatabaseName
	}

	userCollection := os.Getenv("MONGO_COLLECTION_USER")
	if userCollection == "" {
		userCollection = defaultUserCollection
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	log.Info().Str("database", dbName).Str("user_collection", userCollection).Msg("MongoDB connection established")

	return &service{
		db:             client,
		dbName:         dbName,
		userCollection: userCollection,
	}
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.db.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Client() *mongo.Client {
	return s.db
}

func (s *service) Collection(name string) *mongo.Collection {
	return s.db.Database(s.dbName).Collection(name)
}

func (s *service) UserCollectionName() string {
	return s.userCollection
}

// EnsureIndexes creates the unique email indexes backing the uniqueness
// pre-checks in the person services. The pre-check stays advisory; the
// index closes the check-then-insert race when the store honors it.
// Emails are stored lower-cased, so a plain unique index is enough.
func (s *service) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{CollectionContacts, s.userCollection} {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := s.Collection(name).Indexes().CreateOne(ctx, indexModel); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.db.Disconnect(ctx)
}
