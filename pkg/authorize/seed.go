package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic)
	clinicPolicies := []PermissionPolicy{
		// Admin: full control over the booking core plus audit and grants.
		// Wildcard action covers cancel and edit-request review as well.
		{RoleAdmin, DomainClinic, ResourceAppointment, WildcardAction, EffectAllow},
		{RoleAdmin, DomainClinic, ResourcePatient, WildcardAction, EffectAllow},
		{RoleAdmin, DomainClinic, ResourceSchedule, WildcardAction, EffectAllow},
		{RoleAdmin, DomainClinic, ResourceNotification, WildcardAction, EffectAllow},
		{RoleAdmin, DomainClinic, ResourceAudit, ActionRead, EffectAllow},
		{RoleAdmin, DomainClinic, ResourceRBAC, ActionGrant, EffectAllow},

		// Patient: book, view and cancel own appointments, browse free slots,
		// read own notifications. Ownership itself is checked by the services.
		{RolePatient, DomainClinic, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, DomainClinic, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceAppointment, ActionUpdate, EffectAllow},
		{RolePatient, DomainClinic, ResourceAppointment, ActionCancel, EffectAllow},
		{RolePatient, DomainClinic, ResourceSchedule, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceNotification, ActionRead, EffectAllow},
		{RolePatient, DomainClinic, ResourceNotification, ActionUpdate, EffectAllow},
	}

	allPolicies := append(sysPolicies, clinicPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignClinicRole assigns a clinic role to a user.
// Valid roles: RoleAdmin, RolePatient
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleAdmin, RolePatient:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainClinic)
	return err
}

// RemoveClinicRole removes a clinic role from a user.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainClinic)
	return err
}

// GetClinicRoles returns all clinic roles a user holds.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainClinic)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RoleSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	if role != RoleSuperAdmin {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
