package auditlog

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	auditLogs := stack.Group(r, "/AuditLog")
	{
		auditLogs.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionRead),
			handler.GetAll,
		)
		auditLogs.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionRead),
			handler.GetByID,
		)
		auditLogs.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionCreate),
			handler.Create,
		)
		auditLogs.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionUpdate),
			handler.Update,
		)
		auditLogs.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAuditLog, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
