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

// ContactService holds the business rules for the contacts collection:
// email uniqueness, partial-update semantics, and the error taxonomy.
type ContactService interface {
	GetContacts(ctx context.Context) ([]models.Contact, error)
	GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	UpdateContact(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error)
	DeleteContact(ctx context.Context, id primitive.ObjectID) error
}

type contactServiceImpl struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactServiceImpl{contactRepo: contactRepo}
}

func (s *contactServiceImpl) GetContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Store("list contacts", err)
	}
	return contacts, nil
}

func (s *contactServiceImpl) GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("contact")
		}
		return nil, errs.Store("find contact", err)
	}
	return contact, nil
}

func (s *contactServiceImpl) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	// Advisory uniqueness pre-check. The unique index on email is the
	// backstop for two concurrent creates passing this read.
	existing, err := s.contactRepo.FindByEmail(ctx, contact.Email)
	if err == nil && existing != nil {
		log.Warn().Str("email", contact.Email).Msg("Contact email already exists")
		return nil, errs.Conflict("a contact with this email already exists")
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.Store("check contact email", err)
	}

	contact.ID = primitive.NewObjectID()
	if err := s.contactRepo.Insert(ctx, contact); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.Conflict("a contact with this email already exists")
		}
		return nil, errs.Store("insert contact", err)
	}

	log.Info().Str("contact_id", contact.ID.Hex()).Msg("Contact created")
	return contact, nil
}

func buildContactUpdateFields(update models.ContactUpdate) bson.M {
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

// UpdateContact applies the supplied fields to one contact. The bool
// result reports whether the document actually changed; a matched but
// unmodified update is not an error.
func (s *contactServiceImpl) UpdateContact(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
	fields := buildContactUpdateFields(update)
	if len(fields) == 0 {
		return nil, false, errs.Validation("no fields to update")
	}

	if update.Email != nil {
		existing, err := s.contactRepo.FindByEmail(ctx, *update.Email)
		if err == nil && existing != nil && existing.ID != id {
			log.Warn().Str("email", *update.Email).Msg("Contact email already taken by another document")
			return nil, false, errs.Conflict("another contact already uses this email")
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, errs.Store("check contact email", err)
		}
	}

	result, err := s.contactRepo.Update(ctx, id, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, false, errs.Conflict("another contact already uses this email")
		}
		return nil, false, errs.Store("update contact", err)
	}
	if result.MatchedCount == 0 {
		return nil, false, errs.NotFound("contact")
	}

	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, errs.NotFound("contact")
		}
		return nil, false, errs.Store("reload contact", err)
	}

	return contact, result.ModifiedCount > 0, nil
}

func (s *contactServiceImpl) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return errs.Store("delete contact", err)
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("contact")
	}
	log.Info().Str("contact_id", id.Hex()).Msg("Contact deleted")
	return nil
}
