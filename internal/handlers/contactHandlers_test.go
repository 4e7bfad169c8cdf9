package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rolodex/internal/errs"
	"rolodex/internal/models"
)

type fakeContactService struct {
	getContacts    func(ctx context.Context) ([]models.Contact, error)
	getContactByID func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	createContact  func(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	updateContact  func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error)
	deleteContact  func(ctx context.Context, id primitive.ObjectID) error
}

func (f *fakeContactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	return f.getContacts(ctx)
}

func (f *fakeContactService) GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return f.getContactByID(ctx, id)
}

func (f *fakeContactService) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	return f.createContact(ctx, contact)
}

func (f *fakeContactService) UpdateContact(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
	return f.updateContact(ctx, id, update)
}

func (f *fakeContactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return f.deleteContact(ctx, id)
}

func contactRouter(svc *fakeContactService) *mux.Router {
	h := NewContactHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/contacts", h.GetContacts).Methods("GET")
	r.HandleFunc("/contacts", h.CreateContact).Methods("POST")
	r.HandleFunc("/contacts/{id}", h.GetContactByID).Methods("GET")
	r.HandleFunc("/contacts/{id}", h.UpdateContact).Methods("PUT")
	r.HandleFunc("/contacts/{id}", h.DeleteContact).Methods("DELETE")
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetContactsEmpty(t *testing.T) {
	r := contactRouter(&fakeContactService{
		getContacts: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{}, nil
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/contacts", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetContactsStoreError(t *testing.T) {
	r := contactRouter(&fakeContactService{
		getContacts: func(ctx context.Context) ([]models.Contact, error) {
			return nil, errs.Store("list contacts", assert.AnError)
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/contacts", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
}

func TestGetContactByIDMalformedID(t *testing.T) {
	// The service must never be reached for a malformed identifier.
	r := contactRouter(&fakeContactService{
		getContactByID: func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
			t.Fatal("service called with malformed id")
			return nil, nil
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/contacts/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContactByIDNotFound(t *testing.T) {
	r := contactRouter(&fakeContactService{
		getContactByID: func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
			return nil, errs.NotFound("contact")
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/contacts/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateContact(t *testing.T) {
	t.Run("valid payload returns the generated id", func(t *testing.T) {
		id := primitive.NewObjectID()
		var received *models.Contact
		r := contactRouter(&fakeContactService{
			createContact: func(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
				received = contact
				contact.ID = id
				return contact, nil
			},
		})

		rec := doJSON(t, r, http.MethodPost, "/contacts", map[string]string{
			"firstName":     "A",
			"lastName":      "B",
			"email":         "a@b.com",
			"favoriteColor": "red",
			"birthday":      "2020-01-01",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id.Hex(), body["id"])
		assert.Equal(t, "a@b.com", received.Email)
	})

	t.Run("email is trimmed and lower-cased before the service sees it", func(t *testing.T) {
		var received *models.Contact
		r := contactRouter(&fakeContactService{
			createContact: func(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
				received = contact
				return contact, nil
			},
		})

		rec := doJSON(t, r, http.MethodPost, "/contacts", map[string]string{
			"firstName":     "  A  ",
			"lastName":      "B",
			"email":         " A@X.com ",
			"favoriteColor": "red",
			"birthday":      "2020-01-01",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "a@x.com", received.Email)
		assert.Equal(t, "A", received.FirstName)
	})

	t.Run("missing fields are listed in details", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			createContact: func(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
				t.Fatal("service called with invalid payload")
				return nil, nil
			},
		})

		rec := doJSON(t, r, http.MethodPost, "/contacts", map[string]string{
			"firstName": "A",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Error)
		assert.Contains(t, body.Details, "lastName is required")
		assert.Contains(t, body.Details, "email is required")
		assert.Contains(t, body.Details, "favoriteColor is required")
		assert.Contains(t, body.Details, "birthday is required")
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			createContact: func(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
				return nil, errs.Conflict("a contact with this email already exists")
			},
		})

		rec := doJSON(t, r, http.MethodPost, "/contacts", map[string]string{
			"firstName":     "A",
			"lastName":      "B",
			"email":         "a@x.com",
			"favoriteColor": "red",
			"birthday":      "2020-01-01",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		r := contactRouter(&fakeContactService{})
		req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateContact(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("empty body is rejected by the service rule", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			updateContact: func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
				return nil, false, errs.Validation("no fields to update")
			},
		})

		rec := doJSON(t, r, http.MethodPut, "/contacts/"+id.Hex(), map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid supplied field never reaches the service", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			updateContact: func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
				t.Fatal("service called with invalid payload")
				return nil, false, nil
			},
		})

		rec := doJSON(t, r, http.MethodPut, "/contacts/"+id.Hex(), map[string]string{
			"birthday": "tomorrow",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("modified update returns the document", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			updateContact: func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
				return &models.Contact{ID: id, FavoriteColor: *update.FavoriteColor}, true, nil
			},
		})

		rec := doJSON(t, r, http.MethodPut, "/contacts/"+id.Hex(), map[string]string{
			"favoriteColor": "blue",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var body models.Contact
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "blue", body.FavoriteColor)
	})

	t.Run("matched but unmodified reports no changes", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			updateContact: func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
				return &models.Contact{ID: id}, false, nil
			},
		})

		rec := doJSON(t, r, http.MethodPut, "/contacts/"+id.Hex(), map[string]string{
			"favoriteColor": "blue",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"no changes"}`, rec.Body.String())
	})

	t.Run("email collision is a conflict", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			updateContact: func(ctx context.Context, id primitive.ObjectID, update models.ContactUpdate) (*models.Contact, bool, error) {
				return nil, false, errs.Conflict("another contact already uses this email")
			},
		})

		rec := doJSON(t, r, http.MethodPut, "/contacts/"+id.Hex(), map[string]string{
			"email": "taken@example.com",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDeleteContact(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("existing contact", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			deleteContact: func(ctx context.Context, id primitive.ObjectID) error {
				return nil
			},
		})

		rec := doJSON(t, r, http.MethodDelete, "/contacts/"+id.Hex(), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing contact", func(t *testing.T) {
		r := contactRouter(&fakeContactService{
			deleteContact: func(ctx context.Context, id primitive.ObjectID) error {
				return errs.NotFound("contact")
			},
		})

		rec := doJSON(t, r, http.MethodDelete, "/contacts/"+id.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		r := contactRouter(&fakeContactService{})

		rec := doJSON(t, r, http.MethodDelete, "/contacts/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
