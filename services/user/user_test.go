package user

import (
	"errors"
	"testing"

	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
)

// stubUserRepo serves canned users and records writes.
type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	creates int
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) {
	return r.byID[id], nil
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserRepo) Create(user *models.User) error {
	r.creates++
	return nil
}

func (r *stubUserRepo) Delete(id string) error { return nil }

func (r *stubUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (r *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.byID[id], nil
}

func (r *stubUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return r.byEmail[email], nil
}

func TestRegisterUser_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  models.UserRegistrationData
	}{
		{"missing name", models.UserRegistrationData{Email: "a@x.com", Password: "longenough"}},
		{"missing email", models.UserRegistrationData{Name: "A", Password: "longenough"}},
		{"missing password", models.UserRegistrationData{Name: "A", Email: "a@x.com"}},
		{"short password", models.UserRegistrationData{Name: "A", Email: "a@x.com", Password: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubUserRepo{byEmail: map[string]*models.User{}}
			svc := &DefaultUserService{Repo: repo}

			_, err := svc.RegisterUser(tc.req)
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if repo.creates != 0 {
				t.Fatalf("expected no user writes, got %d", repo.creates)
			}
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*models.User{
		"taken@x.com": {ID: "u1", Email: "taken@x.com"},
	}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser(models.UserRegistrationData{
		Name: "A", Email: "taken@x.com", Password: "longenough",
	})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no user writes, got %d", repo.creates)
	}
}

func TestUpdateProfileImage_Validation(t *testing.T) {
	svc := &DefaultUserService{Repo: &stubUserRepo{}}

	t.Run("rejects an empty image", func(t *testing.T) {
		_, err := svc.UpdateProfileImage("u1", "")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})

	t.Run("rejects a non data-URL payload", func(t *testing.T) {
		_, err := svc.UpdateProfileImage("u1", "just-some-bytes")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})

	t.Run("rejects unsupported image types", func(t *testing.T) {
		_, err := svc.UpdateProfileImage("u1", "data:image/gif;base64,AAAA")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})
}
