package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"clinic domain", DomainClinic, true},
		{"wildcard domain", WildcardDomain, true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"legacy project domain", Domain("project:550e8400-e29b-41d4-a716-446655440000"), false},
		{"legacy user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestDomainForResource(t *testing.T) {
	tests := []struct {
		resource Resource
		want     Domain
	}{
		{ResourceSystem, DomainSys},
		{ResourceAppointment, DomainClinic},
		{ResourcePatient, DomainClinic},
		{ResourceSchedule, DomainClinic},
		{ResourceNotification, DomainClinic},
		{ResourceAudit, DomainClinic},
		{ResourceRBAC, DomainClinic},
	}

	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			if got := DomainForResource(tt.resource); got != tt.want {
				t.Errorf("DomainForResource(%q) = %q, want %q", tt.resource, got, tt.want)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionCancel, ActionApprove,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceAppointment, ResourceSchedule,
		ResourcePatient, ResourceNotification,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RoleSuperAdmin, RoleAdmin, RolePatient,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestTokenRoleToRBACRole(t *testing.T) {
	if TokenRoleToRBACRole["admin"] != RoleAdmin {
		t.Errorf("Expected admin token role to map to %q", RoleAdmin)
	}
	if TokenRoleToRBACRole["patient"] != RolePatient {
		t.Errorf("Expected patient token role to map to %q", RolePatient)
	}
	if _, ok := TokenRoleToRBACRole["superadmin"]; ok {
		t.Error("Superadmin must not be assignable from a token role claim")
	}
}

func TestRoleDisplayNamesFA(t *testing.T) {
	// Verify all roles have Persian display names
	expectedRoles := []Role{
		RoleSuperAdmin, RoleAdmin, RolePatient,
	}

	for _, role := range expectedRoles {
		if name, ok := RoleDisplayNamesFA[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a Persian display name", role)
		}
	}
}
