package actor

type Role string

const (
	RoleApplicant         Role = "applicant"
	RoleProjectOfficer    Role = "project_officer"
	RoleProgramManager    Role = "program_manager"
	RoleFinanceOfficer    Role = "finance_officer"
	RoleHospitalDirector  Role = "hospital_director"
	RoleExecutiveDirector Role = "executive_director"
	RoleCEO               Role = "ceo"
	RoleFounder           Role = "founder"
	RoleAdmin             Role = "admin"
)

// Actor is the authenticated requester as resolved by the auth middleware.
// The workflow engine trusts ID and Role verbatim; session validity is the
// middleware's problem.
type Actor struct {
	ID   string
	Role Role
}

func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleProjectOfficer, RoleProgramManager, RoleFinanceOfficer,
		RoleHospitalDirector, RoleExecutiveDirector, RoleCEO, RoleFounder, RoleAdmin:
		return true
	}
	return false
}
