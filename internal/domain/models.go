package domain

// Models lists every resource model, parents before children, for a single
// AutoMigrate call.
func Models() []any {
	return []any{
		&Department{},
		&Employee{},
		&Role{},
		&EmployeeRole{},
		&Benefit{},
		&EmployeeBenefit{},
		&Project{},
		&EmployeeProject{},
		&TrainingProgram{},
		&EmployeeTraining{},
		&LeaveRequest{},
		&PerformanceReview{},
		&Salary{},
		&Attendance{},
		&Notification{},
		&AuditLog{},
		&Setting{},
	}
}
