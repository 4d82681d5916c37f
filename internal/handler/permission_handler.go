package handler

import (
	"net/http"

	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissionService service.PermissionService
	assignmentService service.AssignmentService
}

func NewPermissionHandler(permissionService service.PermissionService, assignmentService service.AssignmentService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService, assignmentService: assignmentService}
}

func (h *PermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	perms := router.Group("/api/permissions")
	{
		perms.POST("/apply", h.Apply)
		perms.POST("/apply-transfer", h.ApplyTransfer)
		perms.GET("/search", h.Search)
	}
}

// Apply replaces an owner's warehouse permissions and parameter rows
// @Summary      Apply warehouse permissions
// @Description  Deletes the owner's assignments for the warehouse and profile, the parameter rows under the description key, optionally demotes other default warehouses, then inserts the drafts. All in one transaction.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.PermissionRequest  true  "Permission set"
// @Success      200      {object}  response.Response{data=service.ApplyResult}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/permissions/apply [post]
func (h *PermissionHandler) Apply(c *gin.Context) {
	var req service.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.permissionService.Apply(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ApplyTransfer replaces an owner's transfer permissions
// @Summary      Apply transfer permissions
// @Description  Resolves the movement types for par_descrip2, clears exit (te_exists) and entry (ts_exists) rows for them, then inserts the drafts. All in one transaction.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.TransferPermissionRequest  true  "Transfer permission set"
// @Success      200      {object}  response.Response{data=[]model.Assignment}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/permissions/apply-transfer [post]
func (h *PermissionHandler) ApplyTransfer(c *gin.Context) {
	var req service.TransferPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	rows, err := h.permissionService.ApplyTransfer(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// Search lists one labelled row per owner holding a matching assignment
// @Summary      Search permission holders
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        adm_perfil   query     int     false  "Profile"
// @Param        adm_status   query     string  false  "Status"
// @Param        adm_almacen  query     string  false  "Comma separated warehouses"
// @Param        page         query     int     false  "Page"
// @Param        per_page     query     int     false  "Items per page"
// @Success      200          {object}  response.Response{data=[]service.PermissionSummary}
// @Failure      400          {object}  response.Response
// @Router       /api/permissions/search [get]
func (h *PermissionHandler) Search(c *gin.Context) {
	q := &queryParser{c: c}
	p := pagination.Parse(c)
	filter := service.SearchPermissionsFilter{
		Page:       p.Page,
		PerPage:    p.PerPage,
		ProfileID:  q.integer("adm_perfil"),
		Status:     q.str("adm_status"),
		Warehouses: q.list("adm_almacen"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}

	rows, err := h.assignmentService.SearchPermissions(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}
