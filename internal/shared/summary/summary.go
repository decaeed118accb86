// Package summary renders related rows embedded in resource responses.
package summary

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
)

type Employee struct {
	EmployeeID   uint   `json:"employeeId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	HireDate     string `json:"hireDate"`
	DepartmentID uint   `json:"departmentId"`
}

type Department struct {
	DepartmentID uint   `json:"departmentId"`
	Name         string `json:"name"`
}

type Role struct {
	RoleID uint   `json:"roleId"`
	Name   string `json:"name"`
}

type Benefit struct {
	BenefitID uint   `json:"benefitId"`
	Name      string `json:"name"`
	Cost      string `json:"cost"`
}

type Project struct {
	ProjectID uint    `json:"projectId"`
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
	ManagerID uint    `json:"managerId"`
}

type TrainingProgram struct {
	TrainingProgramID uint    `json:"trainingProgramId"`
	Name              string  `json:"name"`
	StartDate         string  `json:"startDate"`
	EndDate           *string `json:"endDate"`
	TrainerID         uint    `json:"trainerId"`
}

// FromEmployee returns nil when the relation was not loaded.
func FromEmployee(e *domain.Employee) *Employee {
	if e == nil {
		return nil
	}
	return &Employee{
		EmployeeID:   e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		HireDate:     request.FormatDate(e.HireDate),
		DepartmentID: e.DepartmentID,
	}
}

func FromEmployeeRefs(refs []domain.EmployeeRef) []Employee {
	out := make([]Employee, len(refs))
	for i, e := range refs {
		out[i] = Employee{
			EmployeeID:   e.EmployeeID,
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Email:        e.Email,
			HireDate:     request.FormatDate(e.HireDate),
			DepartmentID: e.DepartmentID,
		}
	}
	return out
}

func FromDepartment(d *domain.Department) *Department {
	if d == nil {
		return nil
	}
	return &Department{DepartmentID: d.DepartmentID, Name: d.Name}
}

func FromRole(r *domain.Role) *Role {
	if r == nil {
		return nil
	}
	return &Role{RoleID: r.RoleID, Name: r.Name}
}

func FromBenefit(b *domain.Benefit) *Benefit {
	if b == nil {
		return nil
	}
	return &Benefit{BenefitID: b.BenefitID, Name: b.Name, Cost: b.Cost.StringFixed(2)}
}

func FromProject(p *domain.Project) *Project {
	if p == nil {
		return nil
	}
	return &Project{
		ProjectID: p.ProjectID,
		Name:      p.Name,
		StartDate: request.FormatDate(p.StartDate),
		EndDate:   request.FormatOptionalDate(p.EndDate),
		ManagerID: p.ManagerID,
	}
}

func FromTrainingProgram(tp *domain.TrainingProgram) *TrainingProgram {
	if tp == nil {
		return nil
	}
	return &TrainingProgram{
		TrainingProgramID: tp.TrainingProgramID,
		Name:              tp.Name,
		StartDate:         request.FormatDate(tp.StartDate),
		EndDate:           request.FormatOptionalDate(tp.EndDate),
		TrainerID:         tp.TrainerID,
	}
}
