package department

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	departments := stack.Group(r, "/Department")
	{
		departments.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead),
			handler.GetAll,
		)
		departments.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead),
			handler.GetByID,
		)
		departments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionCreate),
			handler.Create,
		)
		departments.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionUpdate),
			handler.Update,
		)
		departments.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
