package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

func TestAuthorize(t *testing.T) {
	owner := domain.Principal{UserID: "u-1", Role: entity.RoleUser}
	stranger := domain.Principal{UserID: "u-2", Role: entity.RoleUser}
	admin := domain.Principal{UserID: "u-3", Role: entity.RoleAdmin}

	cases := []struct {
		name    string
		caller  domain.Principal
		rule    domain.Rule
		allowed bool
	}{
		{"dueño con RuleOwner", owner, domain.RuleOwner, true},
		{"ajeno con RuleOwner", stranger, domain.RuleOwner, false},
		{"admin ajeno con RuleOwner", admin, domain.RuleOwner, false},
		{"dueño con RuleOwnerOrAdmin", owner, domain.RuleOwnerOrAdmin, true},
		{"admin con RuleOwnerOrAdmin", admin, domain.RuleOwnerOrAdmin, true},
		{"ajeno con RuleOwnerOrAdmin", stranger, domain.RuleOwnerOrAdmin, false},
		{"admin con RuleAdmin", admin, domain.RuleAdmin, true},
		{"dueño no admin con RuleAdmin", owner, domain.RuleAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.Authorize(tc.caller, "u-1", tc.rule)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestAuthorize_PrincipalVacioNoEsDueño(t *testing.T) {
	err := domain.Authorize(domain.Principal{}, "", domain.RuleOwner)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
