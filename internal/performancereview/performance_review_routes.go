package performancereview

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	reviews := stack.Group(r, "/PerformanceReview")
	{
		reviews.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePerformanceReview, rbac.ActionRead),
			handler.GetAll,
		)
		reviews.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePerformanceReview, rbac.ActionRead),
			handler.GetByID,
		)
		reviews.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePerformanceReview, rbac.ActionCreate),
			handler.Create,
		)
		reviews.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePerformanceReview, rbac.ActionUpdate),
			handler.Update,
		)
		reviews.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePerformanceReview, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
