package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
)

type ParameterHandler struct {
	parameterService service.ParameterService
}

func NewParameterHandler(parameterService service.ParameterService) *ParameterHandler {
	return &ParameterHandler{parameterService: parameterService}
}

func (h *ParameterHandler) RegisterRoutes(router *gin.RouterGroup) {
	params := router.Group("/api/parameters")
	{
		params.GET("", h.List)
		params.POST("", h.Create)
		params.PUT("/:id", h.Update)
		params.DELETE("/:id", h.Delete)
	}
}

// parseOrder reads "col,col:desc"
func parseOrder(q *queryParser, key string) []repository.ParameterOrder {
	var out []repository.ParameterOrder
	for _, part := range q.list(key) {
		col, dir, _ := strings.Cut(part, ":")
		switch strings.ToLower(dir) {
		case "", "asc":
			out = append(out, repository.ParameterOrder{Column: col})
		case "desc":
			out = append(out, repository.ParameterOrder{Column: col, Desc: true})
		default:
			q.fail(key, "a list of column[:asc|desc]")
			return nil
		}
	}
	return out
}

// List returns a page of parameter rows
// @Summary      List parameters
// @Tags         parameters
// @Produce      json
// @Security     BearerAuth
// @Param        par_tipopara         query     string  false  "Parameter type"
// @Param        par_idenpara         query     int     false  "Entity"
// @Param        par_idenpara__in     query     string  false  "Comma separated entities"
// @Param        par_descrip2__in     query     string  false  "Comma separated descriptions"
// @Param        par_descrip2__notin  query     string  false  "Comma separated descriptions to exclude"
// @Param        order_by             query     string  false  "e.g. par_descrip1,par_idparameter:desc"
// @Param        page                 query     int     false  "Page"
// @Param        per_page             query     int     false  "Items per page"
// @Success      200                  {object}  response.Response{data=response.Page}
// @Failure      400                  {object}  response.Response
// @Router       /api/parameters [get]
func (h *ParameterHandler) List(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.ParameterFilter{
		ID:            q.int64("par_idparameter"),
		Type:          q.str("par_tipopara"),
		EntityID:      q.int64("par_idenpara"),
		EntityIDIn:    q.int64List("par_idenpara__in"),
		EntityIDNot:   q.int64("par_idenpara__not"),
		ModuleID:      q.int64("par_idmodulo"),
		Descrip1:      q.str("par_descrip1"),
		Descrip2:      q.str("par_descrip2"),
		Descrip2In:    q.list("par_descrip2__in"),
		Descrip2NotIn: q.list("par_descrip2__notin"),
		Descrip3:      q.str("par_descrip3"),
		Descrip3In:    q.list("par_descrip3__in"),
		Descrip4:      q.str("par_descrip4"),
		Descrip5:      q.str("par_descrip5"),
		StatusID:      q.int64("par_idstatus"),
		Amount1:       q.decimal("par_importe1"),
		Amount1Not:    q.decimal("par_importe1__not"),
		UserID:        q.int64("par_idcveusu"),
		OperatedOn:    q.date("par_fechope"),
		OrderBy:       parseOrder(q, "order_by"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.parameterService.List(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// Create inserts one parameter row
// @Summary      Create parameter
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.ParameterDraft  true  "Parameter"
// @Success      201      {object}  response.Response{data=model.Parameter}
// @Failure      400      {object}  response.Response
// @Router       /api/parameters [post]
func (h *ParameterHandler) Create(c *gin.Context) {
	var req service.ParameterDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	p, err := h.parameterService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, p))
}

// Update patches one parameter row
// @Summary      Update parameter
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                             true  "Parameter ID"
// @Param        payload  body      service.UpdateParameterRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.Parameter}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/parameters/{id} [put]
func (h *ParameterHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid parameter ID")
		return
	}
	var req service.UpdateParameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	p, err := h.parameterService.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p))
}

// Delete removes one parameter row
// @Summary      Delete parameter
// @Tags         parameters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Parameter ID"
// @Success      200  {object}  response.Response{data=response.DeleteResult}
// @Router       /api/parameters/{id} [delete]
func (h *ParameterHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid parameter ID")
		return
	}

	ok, err := h.parameterService.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Deleted(ok, fmt.Sprintf("Parameter %d", id))))
}
