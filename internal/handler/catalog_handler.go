package handler

import (
	"net/http"

	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	identifiers := router.Group("/api/identifiers")
	{
		identifiers.GET("", h.ListIdentifiers)
		identifiers.POST("", h.CreateIdentifier)
	}
	router.GET("/api/persons", h.ListPersons)
	router.GET("/api/statuses", h.ListStatuses)
	router.GET("/api/users", h.ListUsers)
	router.GET("/api/legacy-users", h.ListLegacyUsers)
}

// ListIdentifiers godoc
// @Summary      List parameter entity identifiers
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        caip_enpara  query     string  false  "Code"
// @Param        page         query     int     false  "Page"
// @Param        per_page     query     int     false  "Items per page"
// @Success      200          {object}  response.Response{data=response.Page}
// @Router       /api/identifiers [get]
func (h *CatalogHandler) ListIdentifiers(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.IdentifierFilter{
		ID:       q.int64("caip_idenpara"),
		Code:     q.str("caip_enpara"),
		StatusID: q.int64("caip_idstatus"),
		UserID:   q.int64("caip_idcveusu"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.catalogService.ListIdentifiers(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// CreateIdentifier godoc
// @Summary      Create a parameter entity identifier
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateIdentifierRequest  true  "Identifier"
// @Success      201      {object}  response.Response{data=model.Identifier}
// @Failure      400      {object}  response.Response
// @Router       /api/identifiers [post]
func (h *CatalogHandler) CreateIdentifier(c *gin.Context) {
	var req service.CreateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	ident, err := h.catalogService.CreateIdentifier(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, ident))
}

// ListPersons godoc
// @Summary      List persons
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        search         query     string  false  "Partial match on names"
// @Param        per_idpersona  query     string  false  "Person"
// @Param        page           query     int     false  "Page"
// @Param        per_page       query     int     false  "Items per page"
// @Success      200            {object}  response.Response{data=response.Page}
// @Router       /api/persons [get]
func (h *CatalogHandler) ListPersons(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.PersonFilter{
		ID:     q.decimal("per_idpersona"),
		Status: q.str("per_status"),
		TaxID:  q.str("per_rfc"),
		Search: c.Query("search"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.catalogService.ListPersons(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// ListStatuses godoc
// @Summary      List status codes
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        cast_cvstatus  query     string  false  "Code"
// @Param        cast_idmodulo  query     int     false  "Module"
// @Param        page           query     int     false  "Page"
// @Param        per_page       query     int     false  "Items per page"
// @Success      200            {object}  response.Response{data=response.Page}
// @Router       /api/statuses [get]
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.StatusFilter{
		ID:       q.int64("cast_idstatus"),
		Code:     q.str("cast_cvstatus"),
		ModuleID: q.int64("cast_idmodulo"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.catalogService.ListStatuses(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// ListUsers returns active users unless cast_cvstatus says otherwise
// @Summary      List users
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        usu_idusuari   query     string  false  "Login"
// @Param        usu_nousuari   query     string  false  "Partial given name"
// @Param        cast_cvstatus  query     string  false  "Status code, defaults to A; empty for any"
// @Param        page           query     int     false  "Page"
// @Param        per_page       query     int     false  "Items per page"
// @Success      200            {object}  response.Response{data=response.Page}
// @Failure      400            {object}  response.Response
// @Router       /api/users [get]
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.UserFilter{
		ID:           q.int64("usu_idusuario"),
		Login:        q.str("usu_idusuari"),
		PaternalName: q.str("usu_apusuari"),
		MaternalName: q.str("usu_amusuari"),
		GivenName:    q.str("usu_nousuari"),
		DepartmentID: q.int64("usu_iddepto"),
		StatusID:     q.int64("usu_idstatus"),
		StatusCode:   q.statusCode("cast_cvstatus"),
		CreatedByID:  q.int64("usu_idcveusu"),
		PositionID:   q.int64("usu_idpuesto"),
		CompanyID:    q.int64("usu_idempresa"),
		EmployeeKey:  q.str("usu_cveemp"),
		Days:         q.integer("usu_dias"),
		PersonID:     q.int64("usu_idpersona"),
		MobileKey:    q.str("usu_cvemovil"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.catalogService.ListUsers(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// ListLegacyUsers godoc
// @Summary      List legacy users
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        usu_idusuari  query     string  false  "Login"
// @Param        usu_status    query     string  false  "Status"
// @Param        page          query     int     false  "Page"
// @Param        per_page      query     int     false  "Items per page"
// @Success      200           {object}  response.Response{data=response.Page}
// @Failure      400           {object}  response.Response
// @Router       /api/legacy-users [get]
func (h *CatalogHandler) ListLegacyUsers(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.LegacyUserFilter{
		Login:        q.str("usu_idusuari"),
		PaternalName: q.str("usu_apusuari"),
		MaternalName: q.str("usu_amusuari"),
		GivenName:    q.str("usu_nousuari"),
		Department:   q.str("usu_depto"),
		Status:       q.str("usu_status"),
		OperatorKey:  q.str("usu_cveusu"),
		EmployeeKey:  q.str("usu_cveemp"),
		Position:     q.str("usu_puesto"),
		Days:         q.integer("usu_dias"),
		PersonID:     q.int64("usu_idpersona"),
		CompanyID:    q.str("usu_idempresa"),
		MobileKey:    q.str("usu_cvemovil"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.catalogService.ListLegacyUsers(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}
