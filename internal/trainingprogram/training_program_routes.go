package trainingprogram

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	programs := stack.Group(r, "/TrainingProgram")
	{
		programs.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTrainingProgram, rbac.ActionRead),
			handler.GetAll,
		)
		programs.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTrainingProgram, rbac.ActionRead),
			handler.GetByID,
		)
		programs.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTrainingProgram, rbac.ActionCreate),
			handler.Create,
		)
		programs.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTrainingProgram, rbac.ActionUpdate),
			handler.Update,
		)
		programs.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTrainingProgram, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
