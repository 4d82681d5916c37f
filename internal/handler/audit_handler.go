package handler

import (
	"net/http"

	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// GetAuditLogs retrieves the permission audit trail, newest first
// @Summary      Get audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        bit_adm_idpersona  query     string  false  "Owner"
// @Param        bit_adm_almacen    query     string  false  "Warehouse"
// @Param        par_idparameter    query     int     false  "Parameter"
// @Param        bit_fechope        query     string  false  "Operation date (YYYY-MM-DD)"
// @Param        page               query     int     false  "Page number (default 1)"
// @Param        per_page           query     int     false  "Number of items per page (default 10)"
// @Success      200                {object}  response.Response{data=response.Page}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.AuditFilter{
		ParameterID:  q.int64("par_idparameter"),
		OwnerID:      q.decimal("bit_adm_idpersona"),
		Warehouse:    q.str("bit_adm_almacen"),
		Observations: q.str("bit_observaciones"),
		OperatorKey:  q.str("bit_cveusu"),
		OperatedOn:   q.date("bit_fechope"),
	}
	if raw, ok := c.GetQuery("bit_id"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			q.fail("bit_id", "a UUID")
		} else {
			filter.ID = &id
		}
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	logs, total, err := h.auditService.List(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve audit logs: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: logs, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// Create records an audit entry by hand
// @Summary      Create audit entry
// @Tags         audit
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAuditRequest  true  "Entry"
// @Success      201      {object}  response.Response{data=model.AuditEntry}
// @Failure      400      {object}  response.Response
// @Router       /api/audit-logs [post]
func (h *AuditHandler) Create(c *gin.Context) {
	var req service.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	entry, err := h.auditService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// Update patches an audit entry
// @Summary      Update audit entry
// @Tags         audit
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Entry ID"
// @Param        payload  body      service.UpdateAuditRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.AuditEntry}
// @Failure      404      {object}  response.Response
// @Router       /api/audit-logs/{id} [put]
func (h *AuditHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid audit entry ID")
		return
	}
	var req service.UpdateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	entry, err := h.auditService.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entry))
}

// Delete removes an audit entry
// @Summary      Delete audit entry
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  response.Response{data=response.DeleteResult}
// @Router       /api/audit-logs/{id} [delete]
func (h *AuditHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid audit entry ID")
		return
	}

	ok, err := h.auditService.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Deleted(ok, "Audit entry "+id.String())))
}
