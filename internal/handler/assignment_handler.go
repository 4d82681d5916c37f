package handler

import (
	"fmt"
	"net/http"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

func (h *AssignmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/api/assignments")
	{
		assignments.GET("", h.List)
		assignments.POST("", h.Create)
		assignments.PUT("/:owner/:warehouse/:movement", h.Update)
		assignments.DELETE("/:owner/:warehouse/:movement", h.Delete)
	}
}

func assignmentKey(c *gin.Context) (model.AssignmentKey, error) {
	owner, err := decimal.NewFromString(c.Param("owner"))
	if err != nil {
		return model.AssignmentKey{}, fmt.Errorf("owner must be a number")
	}
	return model.AssignmentKey{
		OwnerID:      owner,
		Warehouse:    c.Param("warehouse"),
		MovementType: c.Param("movement"),
	}, nil
}

// List returns a page of assignments; every column can be used as an exact filter
// @Summary      List assignments
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        search         query     string  false  "Partial match on warehouse"
// @Param        adm_idpersona  query     string  false  "Owner"
// @Param        adm_almacen    query     string  false  "Warehouse"
// @Param        adm_perfil     query     int     false  "Profile"
// @Param        page           query     int     false  "Page"
// @Param        per_page       query     int     false  "Items per page"
// @Success      200            {object}  response.Response{data=response.Page}
// @Failure      400            {object}  response.Response
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.AssignmentFilter{
		Search:         c.Query("search"),
		OwnerID:        q.decimal("adm_idpersona"),
		Warehouse:      q.str("adm_almacen"),
		MovementType:   q.str("adm_tmov"),
		Status:         q.str("adm_status"),
		UpdatedOn:      q.date("adm_fechaact"),
		OperatorKey:    q.str("adm_cveusu"),
		OperatedOn:     q.date("adm_fechope"),
		IsDefault:      q.boolean("adm_almdefault"),
		EmitterRegion:  q.integer("adm_edorepemi"),
		EmitterUnit:    q.str("adm_uninegemi"),
		ProfileID:      q.integer("adm_perfil"),
		ReceiverRegion: q.integer("adm_edoreprec"),
		ReceiverUnit:   q.str("adm_uninegrec"),
		ReceivingWH:    q.str("adm_almrecept"),
		PurchaseOrder:  q.str("adm_ordencompra"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.assignmentService.List(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// Create inserts one assignment
// @Summary      Create assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AssignmentDraft  true  "Assignment"
// @Success      201      {object}  response.Response{data=model.Assignment}
// @Failure      400      {object}  response.Response
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.AssignmentDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	a, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, a))
}

// Update patches one assignment by its key
// @Summary      Update assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        owner      path      string                           true  "Owner"
// @Param        warehouse  path      string                           true  "Warehouse"
// @Param        movement   path      string                           true  "Movement type"
// @Param        payload    body      service.UpdateAssignmentRequest  true  "Fields to change"
// @Success      200        {object}  response.Response{data=model.Assignment}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /api/assignments/{owner}/{warehouse}/{movement} [put]
func (h *AssignmentHandler) Update(c *gin.Context) {
	key, err := assignmentKey(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	a, err := h.assignmentService.Update(c.Request.Context(), key, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, a))
}

// Delete removes one assignment; a missing row answers success=false
// @Summary      Delete assignment
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        owner      path      string  true  "Owner"
// @Param        warehouse  path      string  true  "Warehouse"
// @Param        movement   path      string  true  "Movement type"
// @Success      200        {object}  response.Response{data=response.DeleteResult}
// @Router       /api/assignments/{owner}/{warehouse}/{movement} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	key, err := assignmentKey(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ok, err := h.assignmentService.Delete(c.Request.Context(), key)
	if err != nil {
		writeError(c, err)
		return
	}

	subject := fmt.Sprintf("Assignment %s/%s/%s", key.OwnerID, key.Warehouse, key.MovementType)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Deleted(ok, subject)))
}
