package user

import (
	"fmt"

	userRepo "dormhub/database/repository/user"
	"dormhub/models"
)

// ProfileUpdate carries the tenant-editable profile fields.
type ProfileUpdate struct {
	DisplayName  string `json:"display_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	PhotoURL     string `json:"photo_url"`
	FCMToken     string `json:"fcm_token"`
}

// UserService manages the Mongo mirror of Firebase accounts.
type UserService interface {
	Sync(uid, email, displayName, photoURL string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, update ProfileUpdate) (*models.User, error)
	List() ([]models.User, error)
	SetRole(id, role string) error
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Sync upserts the profile record for a verified Firebase account and
// returns the stored document. New accounts start as tenants.
func (s *DefaultUserService) Sync(uid, email, displayName, photoURL string) (*models.User, error) {
	u := &models.User{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		Role:        models.RoleTenant,
	}
	if err := s.Repo.Upsert(u); err != nil {
		return nil, err
	}
	stored, err := s.Repo.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("user %s missing after upsert", uid)
	}
	return stored, nil
}

// GetByID loads a user profile.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateProfile applies tenant-editable fields to the stored profile.
func (s *DefaultUserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != "" {
		u.DisplayName = update.DisplayName
	}
	if update.FirstName != "" {
		u.FirstName = update.FirstName
	}
	if update.LastName != "" {
		u.LastName = update.LastName
	}
	if update.MobileNumber != "" {
		u.MobileNumber = update.MobileNumber
	}
	if update.PhotoURL != "" {
		u.PhotoURL = update.PhotoURL
	}
	if update.FCMToken != "" {
		u.FCMToken = update.FCMToken
	}

	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns every user for the back office.
func (s *DefaultUserService) List() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetRole changes a user's role string.
func (s *DefaultUserService) SetRole(id, role string) error {
	if role != models.RoleTenant && role != models.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}
	return s.Repo.SetRole(id, role)
}
