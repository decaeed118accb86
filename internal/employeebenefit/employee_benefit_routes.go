package employeebenefit

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	enrollments := stack.Group(r, "/EmployeeBenefit")
	{
		enrollments.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeBenefit, rbac.ActionRead),
			handler.GetAll,
		)
		enrollments.GET("/:employeeId/:benefitId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeBenefit, rbac.ActionRead),
			handler.GetByID,
		)
		enrollments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeBenefit, rbac.ActionCreate),
			handler.Create,
		)
		enrollments.PUT("/:employeeId/:benefitId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeBenefit, rbac.ActionUpdate),
			handler.Update,
		)
		enrollments.DELETE("/:employeeId/:benefitId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeBenefit, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
