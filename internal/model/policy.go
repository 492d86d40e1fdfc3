package model

import "time"

// Policy describes a password policy: the minimum length plus the optional
// rules a password must satisfy.
type Policy struct {
	MinLength     uint `json:"min_length"`
	RequireDigit  bool `json:"require_digit"`
	RequireCase   bool `json:"require_case"`
	RequireSymbol bool `json:"require_symbol"`
}

// StoredPolicy represents a named policy row in the database.
type StoredPolicy struct {
	ID            int64
	Name          string
	MinLength     uint
	RequireDigit  bool
	RequireCase   bool
	RequireSymbol bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Deleted       bool
}

// PolicyRequest represents a policy create/update request.
type PolicyRequest struct {
	MinLength     uint `json:"min_length"`
	RequireDigit  bool `json:"require_digit"`
	RequireCase   bool `json:"require_case"`
	RequireSymbol bool `json:"require_symbol"`
}

// PolicyResponse represents a named policy in API responses.
type PolicyResponse struct {
	Name      string    `json:"name"`
	Policy    Policy    `json:"policy"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckRequest represents a password check request. Exactly one policy source
// applies: a stored policy referenced by name, an inline policy, or the
// server default when both are absent.
type CheckRequest struct {
	Password   string  `json:"password"`
	PolicyName string  `json:"policy_name,omitempty"`
	Policy     *Policy `json:"policy,omitempty"`
}

// CheckResponse represents the verdict for a password check.
type CheckResponse struct {
	Valid       bool     `json:"valid"`
	FailedRules []string `json:"failed_rules,omitempty"`
	Policy      Policy   `json:"policy"`
}
