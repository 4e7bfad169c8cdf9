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

// UserService mirrors ContactService against the users collection.
// Email uniqueness is scoped to this collection only.
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, bool, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type userServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Store("list users", err)
	}
	return users, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("user")
		}
		return nil, errs.Store("find user", err)
	}
	return user, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		log.Warn().Str("email", user.Email).Msg("User email already exists")
		return nil, errs.Conflict("a user with this email already exists")
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.Store("check user email", err)
	}

	user.ID = primitive.NewObjectID()
	if err := s.userRepo.Insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.Conflict("a user with this email already exists")
		}
		return nil, errs.Store("insert user", err)
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("User created")
	return user, nil
}

func buildUserUpdateFields(update models.UserUpdate) bson.M {
	fields := bson.M{}
	if update.FirstName != nil {
		fields["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["lastName"] = *update.LastName
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.FavoriteColor != nil {
		fields["favoriteColor"] = *update.FavoriteColor
	}
	if update.Birthday != nil {
		fields["birthday"] = *update.Birthday
	}
	return fields
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, bool, error) {
	fields := buildUserUpdateFields(update)
	if len(fields) == 0 {
		return nil, false, errs.Validation("no fields to update")
	}

	if update.Email != nil {
		existing, err := s.userRepo.FindByEmail(ctx, *update.Email)
		if err == nil && existing != nil && existing.ID != id {
			log.Warn().Str("email", *update.Email).Msg("User email already taken by another document")
			return nil, false, errs.Conflict("another user already uses this email")
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, errs.Store("check user email", err)
		}
	}

	result, err := s.userRepo.Update(ctx, id, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, false, errs.Conflict("another user already uses this email")
		}
		return nil, false, errs.Store("update user", err)
	}
	if result.MatchedCount == 0 {
		return nil, false, errs.NotFound("user")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, errs.NotFound("user")
		}
		return nil, false, errs.Store("reload user", err)
	}

	return user, result.ModifiedCount > 0, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return errs.Store("delete user", err)
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("user")
	}
	log.Info().Str("user_id", id.Hex()).Msg("User deleted")
	return nil
}
