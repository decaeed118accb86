package benefit

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	benefits := stack.Group(r, "/Benefit")
	{
		benefits.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBenefit, rbac.ActionRead),
			handler.GetAll,
		)
		benefits.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBenefit, rbac.ActionRead),
			handler.GetByID,
		)
		benefits.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBenefit, rbac.ActionCreate),
			handler.Create,
		)
		benefits.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBenefit, rbac.ActionUpdate),
			handler.Update,
		)
		benefits.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBenefit, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
