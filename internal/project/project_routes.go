package project

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	projects := stack.Group(r, "/Project")
	{
		projects.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetAll,
		)
		projects.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetByID,
		)
		projects.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionCreate),
			handler.Create,
		)
		projects.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionUpdate),
			handler.Update,
		)
		projects.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
