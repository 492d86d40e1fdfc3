package service

import (
	"context"
	"errors"
	"time"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/repository"
)

// MaxPolicyMinLength caps stored minimum lengths; it matches the generator's
// maximum so every storable policy remains satisfiable.
const MaxPolicyMinLength = 128

var (
	ErrPolicyNameRequired  = errors.New("policy name is required")
	ErrPolicyNameTooLong   = errors.New("policy name must be at most 64 characters")
	ErrMinLengthZero       = errors.New("min_length must be at least 1")
	ErrMinLengthOutOfRange = errors.New("min_length must be at most 128")
)

// PolicyService handles named policy business logic.
type PolicyService struct {
	repo *repository.PolicyRepository
}

// NewPolicyService creates a new PolicyService.
func NewPolicyService(repo *repository.PolicyRepository) *PolicyService {
	return &PolicyService{repo: repo}
}

// Save creates or replaces a named policy.
func (s *PolicyService) Save(ctx context.Context, name string, req model.PolicyRequest) (model.PolicyResponse, error) {
	if err := validatePolicyFields(name, req); err != nil {
		return model.PolicyResponse{}, err
	}

	stored := model.StoredPolicy{
		Name:          name,
		MinLength:     req.MinLength,
		RequireDigit:  req.RequireDigit,
		RequireCase:   req.RequireCase,
		RequireSymbol: req.RequireSymbol,
	}

	if err := s.repo.Upsert(ctx, &stored); err != nil {
		return model.PolicyResponse{}, err
	}
	stored.UpdatedAt = time.Now().UTC()

	return policyToResponse(stored), nil
}

// Get retrieves a named policy.
func (s *PolicyService) Get(ctx context.Context, name string) (model.PolicyResponse, error) {
	stored, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return model.PolicyResponse{}, ErrPolicyNotFound
		}
		return model.PolicyResponse{}, err
	}

	return policyToResponse(*stored), nil
}

// List returns all stored policies.
func (s *PolicyService) List(ctx context.Context) ([]model.PolicyResponse, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.PolicyResponse, 0, len(stored))
	for _, p := range stored {
		responses = append(responses, policyToResponse(p))
	}
	return responses, nil
}

// Delete soft-deletes a named policy.
func (s *PolicyService) Delete(ctx context.Context, name string) error {
	err := s.repo.SoftDelete(ctx, name)
	if errors.Is(err, repository.ErrPolicyNotFound) {
		return ErrPolicyNotFound
	}
	return err
}

func validatePolicyFields(name string, req model.PolicyRequest) error {
	switch {
	case name == "":
		return ErrPolicyNameRequired
	case len(name) > 64:
		return ErrPolicyNameTooLong
	case req.MinLength == 0:
		return ErrMinLengthZero
	case req.MinLength > MaxPolicyMinLength:
		return ErrMinLengthOutOfRange
	}
	return nil
}

func policyToResponse(p model.StoredPolicy) model.PolicyResponse {
	return model.PolicyResponse{
		Name: p.Name,
		Policy: model.Policy{
			MinLength:     p.MinLength,
			RequireDigit:  p.RequireDigit,
			RequireCase:   p.RequireCase,
			RequireSymbol: p.RequireSymbol,
		},
		UpdatedAt: p.UpdatedAt,
	}
}
