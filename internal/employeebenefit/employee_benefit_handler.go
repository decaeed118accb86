package employeebenefit

import (
	"fmt"
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employeebenefit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeebenefit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee benefit request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseKey(c *gin.Context) (uint, uint, error) {
	employeeID, err := request.ParseID(c, "employeeId")
	if err != nil {
		return 0, 0, err
	}
	benefitID, err := request.ParseID(c, "benefitId")
	if err != nil {
		return 0, 0, err
	}
	return employeeID, benefitID, nil
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	employeeID, benefitID, err := parseKey(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), employeeID, benefitID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeeBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("%s/%d/%d", c.FullPath(), resp.EmployeeID, resp.BenefitID), resp)
}

func (h *Handler) Update(c *gin.Context) {
	employeeID, benefitID, err := parseKey(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req EmployeeBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.EmployeeID != employeeID || req.BenefitID != benefitID {
		h.writeServiceError(c, apperror.ErrIDMismatch)
		return
	}

	if err := h.service.Update(c.Request.Context(), employeeID, benefitID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) Delete(c *gin.Context) {
	employeeID, benefitID, err := parseKey(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), employeeID, benefitID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}
