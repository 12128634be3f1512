package inquiry

import (
	"fmt"

	inquiryRepo "dormhub/database/repository/inquiry"
	"dormhub/models"

	"github.com/google/uuid"
)

// SubmitRequest is a public contact-form payload.
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	Branch  string `json:"branch"`
}

// InquiryService handles contact-form submissions and their triage.
type InquiryService interface {
	Submit(req SubmitRequest) (*models.Inquiry, error)
	List(unresolvedOnly bool) ([]models.Inquiry, error)
	Resolve(id string) error
	Delete(id string) error
}

// DefaultInquiryService is the production InquiryService.
type DefaultInquiryService struct {
	Repo inquiryRepo.InquiryRepository
}

// Submit validates and stores a new inquiry.
func (s *DefaultInquiryService) Submit(req SubmitRequest) (*models.Inquiry, error) {
	if req.Branch != "" && req.Branch != models.BranchGilPuyat && req.Branch != models.BranchGuadalupe {
		return nil, fmt.Errorf("unknown branch %q", req.Branch)
	}

	inq := &models.Inquiry{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Branch:  req.Branch,
	}
	if err := s.Repo.Create(inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// List returns inquiries for the back office.
func (s *DefaultInquiryService) List(unresolvedOnly bool) ([]models.Inquiry, error) {
	return s.Repo.GetAll(unresolvedOnly)
}

// Resolve marks an inquiry as handled.
func (s *DefaultInquiryService) Resolve(id string) error {
	return s.Repo.MarkResolved(id)
}

// Delete removes an inquiry.
func (s *DefaultInquiryService) Delete(id string) error {
	return s.Repo.Delete(id)
}
