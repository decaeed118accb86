package attendance

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	attendances := stack.Group(r, "/Attendance")
	{
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			handler.GetAll,
		)
		attendances.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			handler.GetByID,
		)
		attendances.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			handler.Create,
		)
		attendances.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionUpdate),
			handler.Update,
		)
		attendances.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
