package rbac

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Resource names used by route registration and policies.
const (
	ResourceAttendance        = "attendance"
	ResourceAuditLog          = "auditlog"
	ResourceBenefit           = "benefit"
	ResourceDepartment        = "department"
	ResourceEmployee          = "employee"
	ResourceEmployeeBenefit   = "employeebenefit"
	ResourceEmployeeProject   = "employeeproject"
	ResourceEmployeeRole      = "employeerole"
	ResourceEmployeeTraining  = "employeetraining"
	ResourceLeaveRequest      = "leaverequest"
	ResourceNotification      = "notification"
	ResourcePerformanceReview = "performancereview"
	ResourceProject           = "project"
	ResourceRole              = "role"
	ResourceSalary            = "salary"
	ResourceSetting           = "setting"
	ResourceTrainingProgram   = "trainingprogram"
	ResourceRBAC              = "rbac"
)

type Policy struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type Grouping struct {
	Role   string `json:"role"`
	Parent string `json:"parent"`
}

// DefaultPolicies: every signed-in user manages the employee facing
// resources; admins manage everything, including what users can.
func DefaultPolicies() []Policy {
	userResources := []string{
		ResourceEmployee,
		ResourceEmployeeProject,
		ResourceEmployeeRole,
		ResourceEmployeeTraining,
		ResourceLeaveRequest,
		ResourceNotification,
	}

	policies := make([]Policy, 0, len(userResources)+1)
	for _, res := range userResources {
		policies = append(policies, Policy{Role: RoleUser, Resource: res, Action: "*"})
	}
	policies = append(policies, Policy{Role: RoleAdmin, Resource: "*", Action: "*"})
	return policies
}

func DefaultGroupings() []Grouping {
	return []Grouping{{Role: RoleAdmin, Parent: RoleUser}}
}

func IsKnownRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
