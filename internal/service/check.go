package service

import (
	"context"
	"errors"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/repository"
	"github.com/passcheck/passcheck-go/internal/validator"
)

var (
	ErrPolicySourceConflict   = errors.New("policy and policy_name are mutually exclusive")
	ErrPolicyStoreUnavailable = errors.New("policy store unavailable")
	ErrPolicyNotFound         = errors.New("policy not found")
)

// CheckService evaluates passwords against policy rule chains.
type CheckService struct {
	policies      *repository.PolicyRepository // nil when the database is unavailable
	defaultPolicy model.Policy
}

// NewCheckService creates a new CheckService. policies may be nil, in which
// case stored-policy lookups fail with ErrPolicyStoreUnavailable.
func NewCheckService(policies *repository.PolicyRepository, defaultPolicy model.Policy) *CheckService {
	return &CheckService{
		policies:      policies,
		defaultPolicy: defaultPolicy,
	}
}

// Check evaluates a password against the resolved policy. The verdict comes
// from the full rule chain; FailedRules lists every rule the password misses
// so clients can report all problems at once.
func (s *CheckService) Check(ctx context.Context, req model.CheckRequest) (model.CheckResponse, error) {
	policy, err := s.resolvePolicy(ctx, req)
	if err != nil {
		return model.CheckResponse{}, err
	}

	rules := rulePolicy(policy)
	return model.CheckResponse{
		Valid:       validator.FromPolicy(rules).Validate(req.Password),
		FailedRules: validator.FailedRules(rules, req.Password),
		Policy:      policy,
	}, nil
}

// resolvePolicy picks the policy for a check request: stored by name, inline,
// or the server default.
func (s *CheckService) resolvePolicy(ctx context.Context, req model.CheckRequest) (model.Policy, error) {
	switch {
	case req.PolicyName != "" && req.Policy != nil:
		return model.Policy{}, ErrPolicySourceConflict
	case req.PolicyName != "":
		if s.policies == nil {
			return model.Policy{}, ErrPolicyStoreUnavailable
		}
		stored, err := s.policies.GetByName(ctx, req.PolicyName)
		if err != nil {
			if errors.Is(err, repository.ErrPolicyNotFound) {
				return model.Policy{}, ErrPolicyNotFound
			}
			return model.Policy{}, err
		}
		return storedPolicy(stored), nil
	case req.Policy != nil:
		return *req.Policy, nil
	default:
		return s.defaultPolicy, nil
	}
}

// rulePolicy converts an API policy into the validator's flat policy form.
func rulePolicy(p model.Policy) validator.Policy {
	return validator.Policy{
		MinLength:     p.MinLength,
		RequireDigit:  p.RequireDigit,
		RequireCase:   p.RequireCase,
		RequireSymbol: p.RequireSymbol,
	}
}

// storedPolicy converts a database policy row into an API policy.
func storedPolicy(p *model.StoredPolicy) model.Policy {
	return model.Policy{
		MinLength:     p.MinLength,
		RequireDigit:  p.RequireDigit,
		RequireCase:   p.RequireCase,
		RequireSymbol: p.RequireSymbol,
	}
}
