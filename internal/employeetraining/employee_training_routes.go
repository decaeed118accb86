package employeetraining

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, stack middleware.Stack) {
	enrollments := stack.Group(r, "/EmployeeTraining")
	{
		enrollments.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeTraining, rbac.ActionRead),
			handler.GetAll,
		)
		enrollments.GET("/:employeeId/:trainingProgramId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeTraining, rbac.ActionRead),
			handler.GetByID,
		)
		enrollments.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeTraining, rbac.ActionCreate),
			handler.Create,
		)
		enrollments.PUT("/:employeeId/:trainingProgramId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeTraining, rbac.ActionUpdate),
			handler.Update,
		)
		enrollments.DELETE("/:employeeId/:trainingProgramId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployeeTraining, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
