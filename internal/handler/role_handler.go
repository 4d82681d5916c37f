package handler

import (
	"net/http"
	"strings"

	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/api/roles")
	{
		roles.GET("", h.List)
		roles.GET("/by-person", h.ByPerson)
		roles.GET("/people-with-roles", h.PeopleWithRoles)
		roles.GET("/people-by-role", h.PeopleByRole)
	}
}

func parseRoleScope(q *queryParser) repository.RoleScope {
	return repository.RoleScope{
		ParamType:       q.str("par_tipopara"),
		Codes:           q.list("par_idenpara__in"),
		ParamStatusCode: q.statusCode("cast_cvstatus"),
		StatusID:        q.int64("rol_idrolestatus"),
		PersonID:        q.decimal("per_idpersona"),
	}
}

// parsePersonOrder reads "col,col:desc"
func parsePersonOrder(q *queryParser, key string) []repository.PersonOrder {
	var out []repository.PersonOrder
	for _, part := range q.list(key) {
		col, dir, _ := strings.Cut(part, ":")
		switch strings.ToLower(dir) {
		case "", "asc":
			out = append(out, repository.PersonOrder{Column: col})
		case "desc":
			out = append(out, repository.PersonOrder{Column: col, Desc: true})
		default:
			q.fail(key, "a list of column[:asc|desc]")
			return nil
		}
	}
	return out
}

// List returns a page of role assignments
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        rol_idpersona     query     int     false  "Person"
// @Param        rol_idrol         query     string  false  "Role code"
// @Param        rol_idrolestatus  query     int     false  "Role status"
// @Param        page              query     int     false  "Page"
// @Param        per_page          query     int     false  "Items per page"
// @Success      200               {object}  response.Response{data=response.Page}
// @Failure      400               {object}  response.Response
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.RoleFilter{
		Search:       c.Query("search"),
		ID:           q.int64("rol_idroles"),
		PersonID:     q.decimal("rol_idpersona"),
		Code:         q.str("rol_idrol"),
		UserID:       q.int64("rol_idcveusu"),
		OperatedOn:   q.date("rol_fechope"),
		BranchRoleID: q.int64("rol_idrolsucursal"),
		StatusID:     q.int64("rol_idrolestatus"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.roleService.List(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// ByPerson returns the roles a person holds among the codes published under a parameter type
// @Summary      List a person's roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        per_idpersona     query     int     false  "Person"
// @Param        par_tipopara      query     string  false  "Parameter type publishing the role codes"
// @Param        par_idenpara__in  query     string  false  "Comma separated role codes"
// @Param        cast_cvstatus     query     string  false  "Parameter status code, defaults to A"
// @Param        rol_idrolestatus  query     int     false  "Role status"
// @Success      200               {object}  response.Response{data=response.Page}
// @Failure      400               {object}  response.Response
// @Router       /api/roles/by-person [get]
func (h *RoleHandler) ByPerson(c *gin.Context) {
	q := &queryParser{c: c}
	scope := parseRoleScope(q)
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.roleService.ByPerson(c.Request.Context(), scope, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// PeopleWithRoles godoc
// @Summary      List people holding scoped roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        par_tipopara      query     string  false  "Parameter type publishing the role codes"
// @Param        par_idenpara__in  query     string  false  "Comma separated role codes"
// @Param        cast_cvstatus     query     string  false  "Parameter status code, defaults to A"
// @Param        order_by          query     string  false  "e.g. per_paterno,per_idpersona:desc"
// @Param        page              query     int     false  "Page"
// @Param        per_page          query     int     false  "Items per page"
// @Success      200               {object}  response.Response{data=response.Page}
// @Failure      400               {object}  response.Response
// @Router       /api/roles/people-with-roles [get]
func (h *RoleHandler) PeopleWithRoles(c *gin.Context) {
	q := &queryParser{c: c}
	scope := parseRoleScope(q)
	order := parsePersonOrder(q, "order_by")
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.roleService.PeopleWithRoles(c.Request.Context(), scope, order, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// PeopleByRole godoc
// @Summary      List people holding a role code
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        rol_idrol  query     string  false  "Role code"
// @Param        page       query     int     false  "Page"
// @Param        per_page   query     int     false  "Items per page"
// @Success      200        {object}  response.Response{data=response.Page}
// @Router       /api/roles/people-by-role [get]
func (h *RoleHandler) PeopleByRole(c *gin.Context) {
	q := &queryParser{c: c}
	code := q.str("rol_idrol")
	p := pagination.Parse(c)

	rows, total, err := h.roleService.PeopleByRole(c.Request.Context(), code, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}
