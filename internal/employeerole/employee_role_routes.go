package employeerole

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	assignments := stack.Group(r, "/EmployeeRole")
	{
		assignments.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeRole, rbac.ActionRead),
			handler.GetAll,
		)
		assignments.GET("/:employeeId/:roleId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeRole, rbac.ActionRead),
			handler.GetByID,
		)
		assignments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeRole, rbac.ActionCreate),
			handler.Create,
		)
		assignments.PUT("/:employeeId/:roleId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeRole, rbac.ActionUpdate),
			handler.Update,
		)
		assignments.DELETE("/:employeeId/:roleId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeRole, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
