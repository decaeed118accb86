package setting

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	settings := stack.Group(r, "/Setting")
	{
		settings.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSetting, rbac.ActionRead),
			handler.GetAll,
		)
		settings.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSetting, rbac.ActionRead),
			handler.GetByID,
		)
		settings.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSetting, rbac.ActionCreate),
			handler.Create,
		)
		settings.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSetting, rbac.ActionUpdate),
			handler.Update,
		)
		settings.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSetting, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
