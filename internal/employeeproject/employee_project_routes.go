package employeeproject

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	assignments := stack.Group(r, "/EmployeeProject")
	{
		assignments.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeProject, rbac.ActionRead),
			handler.GetAll,
		)
		assignments.GET("/:employeeId/:projectId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeProject, rbac.ActionRead),
			handler.GetByID,
		)
		assignments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeProject, rbac.ActionCreate),
			handler.Create,
		)
		assignments.PUT("/:employeeId/:projectId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeProject, rbac.ActionUpdate),
			handler.Update,
		)
		assignments.DELETE("/:employeeId/:projectId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeProject, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
