package salary

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	salaries := stack.Group(r, "/Salary")
	{
		salaries.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.GetAll,
		)
		salaries.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.GetByID,
		)
		salaries.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionCreate),
			handler.Create,
		)
		salaries.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionUpdate),
			handler.Update,
		)
		salaries.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
