package leaverequest

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	leaveRequests := stack.Group(r, "/LeaveRequest")
	{
		leaveRequests.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionRead),
			handler.GetAll,
		)
		leaveRequests.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionRead),
			handler.GetByID,
		)
		leaveRequests.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionCreate),
			handler.Create,
		)
		leaveRequests.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionUpdate),
			handler.Update,
		)
		leaveRequests.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
