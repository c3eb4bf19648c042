package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Lifecycle actions
	ActionCancel  Action = "cancel"
	ActionApprove Action = "approve" // edit request review

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionCancel: {}, ActionApprove: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Booking core
	ResourceAppointment Resource = "appointment"
	ResourceSchedule    Resource = "schedule"

	// Records
	ResourcePatient Resource = "patient"

	// Communication
	ResourceNotification Resource = "notification"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceAppointment: {}, ResourceSchedule: {},
	ResourcePatient:      {},
	ResourceNotification: {},
	ResourceSystem:       {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSuperAdmin Role = "role:superadmin"

	// Clinic roles (domain = clinic)
	RoleAdmin   Role = "role:admin"
	RolePatient Role = "role:patient"
)

var KnownRoles = map[Role]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
	RolePatient:    {},
}

// Persian display names
var RoleDisplayNamesFA = map[Role]string{
	RoleSuperAdmin: "سوپرادمین",
	RoleAdmin:      "ادمین کلینیک",
	RolePatient:    "بیمار",
}

// TokenRoleToRBACRole maps the role claim carried in access tokens
// to the Casbin role assigned in the clinic domain.
var TokenRoleToRBACRole = map[string]Role{
	"admin":   RoleAdmin,
	"patient": RolePatient,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"

	// DomainClinic is the single-tenant clinic domain. All booking,
	// patient and notification policies live here.
	DomainClinic Domain = "clinic"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	switch d {
	case DomainSys, DomainClinic, WildcardDomain:
		return true
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
