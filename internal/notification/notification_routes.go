package notification

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	notifications := stack.Group(r, "/Notification")
	{
		notifications.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionRead),
			handler.GetAll,
		)
		notifications.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionRead),
			handler.GetByID,
		)
		notifications.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionCreate),
			handler.Create,
		)
		notifications.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionUpdate),
			handler.Update,
		)
		notifications.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
