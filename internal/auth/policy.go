package auth

import "github.com/syndicma/syndic-platform/internal/core/domain"

// Capability is a named permission checked before any privileged action.
type Capability string

const (
	CapViewDashboard       Capability = "viewDashboard"
	CapManageUsers         Capability = "manageUsers"
	CapManageApartments    Capability = "manageApartments"
	CapViewApartments      Capability = "viewApartments"
	CapManageBills         Capability = "manageBills"
	CapViewOwnBills        Capability = "viewOwnBills"
	CapRecordPayments      Capability = "recordPayments"
	CapManageExpenses      Capability = "manageExpenses"
	CapSubmitMaintenance   Capability = "submitMaintenance"
	CapManageMaintenance   Capability = "manageMaintenance"
	CapWorkMaintenance     Capability = "workAssignedMaintenance"
	CapManageMeetings      Capability = "manageMeetings"
	CapVote                Capability = "vote"
	CapManageAnnouncements Capability = "manageAnnouncements"
	CapViewReports         Capability = "viewReports"
)

// AllCapabilities lists every capability, in declaration order. Used by the
// exhaustive policy tests and by anything that renders the matrix.
var AllCapabilities = []Capability{
	CapViewDashboard,
	CapManageUsers,
	CapManageApartments,
	CapViewApartments,
	CapManageBills,
	CapViewOwnBills,
	CapRecordPayments,
	CapManageExpenses,
	CapSubmitMaintenance,
	CapManageMaintenance,
	CapWorkMaintenance,
	CapManageMeetings,
	CapVote,
	CapManageAnnouncements,
	CapViewReports,
}

// AllRoles lists every role the policy covers.
var AllRoles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleOwner,
	domain.RoleTenant,
	domain.RoleAccountant,
	domain.RoleServiceProvider,
}

// roleGrants is the authorization matrix as data. ADMIN is handled
// separately in CanAccess (full access); every other role is granted
// exactly what is listed here.
var roleGrants = map[domain.Role][]Capability{
	domain.RoleOwner: {
		CapViewDashboard,
		CapViewApartments,
		CapViewOwnBills,
		CapSubmitMaintenance,
		CapVote,
	},
	domain.RoleTenant: {
		CapViewDashboard,
		CapViewApartments,
		CapSubmitMaintenance,
	},
	domain.RoleAccountant: {
		CapViewDashboard,
		CapManageBills,
		CapViewOwnBills,
		CapRecordPayments,
		CapManageExpenses,
		CapViewReports,
	},
	domain.RoleServiceProvider: {
		CapViewDashboard,
		CapWorkMaintenance,
	},
}

// policy is the matrix flattened once at init for O(1) lookups.
var policy = func() map[domain.Role]map[Capability]bool {
	m := make(map[domain.Role]map[Capability]bool, len(roleGrants))
	for role, caps := range roleGrants {
		set := make(map[Capability]bool, len(caps))
		for _, c := range caps {
			set[c] = true
		}
		m[role] = set
	}
	return m
}()

// CanAccess reports whether role holds capability. Pure over the static
// table; unknown roles hold nothing.
func CanAccess(role domain.Role, capability Capability) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return policy[role][capability]
}
