package role

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	roles := stack.Group(r, "/Role")
	{
		roles.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceRole, rbac.ActionRead),
			handler.GetAll,
		)
		roles.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceRole, rbac.ActionRead),
			handler.GetByID,
		)
		roles.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceRole, rbac.ActionCreate),
			handler.Create,
		)
		roles.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceRole, rbac.ActionUpdate),
			handler.Update,
		)
		roles.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceRole, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
