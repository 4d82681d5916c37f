package handler

import (
	"net/http"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SalesTargetHandler struct {
	targetService service.SalesTargetService
}

func NewSalesTargetHandler(targetService service.SalesTargetService) *SalesTargetHandler {
	return &SalesTargetHandler{targetService: targetService}
}

func (h *SalesTargetHandler) RegisterRoutes(router *gin.RouterGroup) {
	targets := router.Group("/api/sales-targets")
	{
		targets.GET("", h.List)
		targets.POST("", h.Create)
		targets.POST("/save", h.Save)
		targets.PUT("/:year/:seller", h.Update)
		targets.DELETE("/:year/:seller", h.Delete)
	}
	details := router.Group("/api/sales-target-details")
	{
		details.GET("", h.ListDetails)
		details.POST("", h.CreateDetail)
		details.PUT("/:year/:seller/:month", h.UpdateDetail)
		details.DELETE("/:year/:seller/:month", h.DeleteDetail)
	}
}

func pathDecimal(c *gin.Context, name string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name)
		return decimal.Zero, false
	}
	return d, true
}

func targetKey(c *gin.Context) (model.SalesTargetKey, bool) {
	year, ok := pathDecimal(c, "year")
	if !ok {
		return model.SalesTargetKey{}, false
	}
	seller, ok := pathDecimal(c, "seller")
	if !ok {
		return model.SalesTargetKey{}, false
	}
	return model.SalesTargetKey{Year: year, SellerID: seller}, true
}

func detailKey(c *gin.Context) (model.SalesTargetDetailKey, bool) {
	key, ok := targetKey(c)
	if !ok {
		return model.SalesTargetDetailKey{}, false
	}
	month, ok := pathDecimal(c, "month")
	if !ok {
		return model.SalesTargetDetailKey{}, false
	}
	return model.SalesTargetDetailKey{Year: key.Year, SellerID: key.SellerID, Month: month}, true
}

// List returns a page of sales target headers
// @Summary      List sales targets
// @Tags         sales-targets
// @Produce      json
// @Security     BearerAuth
// @Param        obm_ano       query     int     false  "Year"
// @Param        obm_vendedor  query     int     false  "Seller"
// @Param        search        query     string  false  "Partial match on operator"
// @Param        page          query     int     false  "Page"
// @Param        per_page      query     int     false  "Items per page"
// @Success      200           {object}  response.Response{data=response.Page}
// @Failure      400           {object}  response.Response
// @Router       /api/sales-targets [get]
func (h *SalesTargetHandler) List(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.SalesTargetFilter{
		Search:       c.Query("search"),
		Year:         q.decimal("obm_ano"),
		SellerID:     q.decimal("obm_vendedor"),
		Salary:       q.decimal("obm_sueldo"),
		OperatedOn:   q.date("obm_fechope"),
		OperatedTime: q.str("obm_horaope"),
		OperatorKey:  q.str("obm_cveusu"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.targetService.List(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// Create inserts one sales target header
// @Summary      Create sales target
// @Tags         sales-targets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateSalesTargetRequest  true  "Sales target"
// @Success      201      {object}  response.Response{data=model.SalesTarget}
// @Failure      400      {object}  response.Response
// @Router       /api/sales-targets [post]
func (h *SalesTargetHandler) Create(c *gin.Context) {
	var req service.CreateSalesTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := h.targetService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, t))
}

// Save writes a header and replaces its months in one transaction
// @Summary      Save sales target with months
// @Tags         sales-targets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SaveSalesTargetRequest  true  "Header and obd_list"
// @Success      200      {object}  response.Response{data=service.SavedSalesTarget}
// @Failure      400      {object}  response.Response
// @Router       /api/sales-targets/save [post]
func (h *SalesTargetHandler) Save(c *gin.Context) {
	var req service.SaveSalesTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	saved, err := h.targetService.Save(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// Update patches one sales target header
// @Summary      Update sales target
// @Tags         sales-targets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        year     path      int                               true  "Year"
// @Param        seller   path      int                               true  "Seller"
// @Param        payload  body      service.UpdateSalesTargetRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.SalesTarget}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/sales-targets/{year}/{seller} [put]
func (h *SalesTargetHandler) Update(c *gin.Context) {
	key, ok := targetKey(c)
	if !ok {
		return
	}
	var req service.UpdateSalesTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := h.targetService.Update(c.Request.Context(), key, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, t))
}

// Delete removes a header together with its months
// @Summary      Delete sales target
// @Tags         sales-targets
// @Produce      json
// @Security     BearerAuth
// @Param        year    path      int  true  "Year"
// @Param        seller  path      int  true  "Seller"
// @Success      200     {object}  response.Response{data=response.DeleteResult}
// @Router       /api/sales-targets/{year}/{seller} [delete]
func (h *SalesTargetHandler) Delete(c *gin.Context) {
	key, ok := targetKey(c)
	if !ok {
		return
	}

	deleted, err := h.targetService.Delete(c.Request.Context(), key)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Deleted(deleted, "Sales target "+key.String())))
}

// ListDetails godoc
// @Summary      List sales target months
// @Tags         sales-targets
// @Produce      json
// @Security     BearerAuth
// @Param        obd_ano       query     int     false  "Year"
// @Param        obd_vendedor  query     int     false  "Seller"
// @Param        obd_mes       query     int     false  "Month"
// @Param        search        query     string  false  "Partial match on area or operator"
// @Param        page          query     int     false  "Page"
// @Param        per_page      query     int     false  "Items per page"
// @Success      200           {object}  response.Response{data=response.Page}
// @Failure      400           {object}  response.Response
// @Router       /api/sales-target-details [get]
func (h *SalesTargetHandler) ListDetails(c *gin.Context) {
	q := &queryParser{c: c}
	filter := repository.SalesTargetDetailFilter{
		Search:       c.Query("search"),
		Year:         q.decimal("obd_ano"),
		SellerID:     q.decimal("obd_vendedor"),
		Month:        q.decimal("obd_mes"),
		Sales:        q.decimal("obd_venta"),
		Commission:   q.decimal("obd_comision"),
		OperatedOn:   q.date("obd_fechope"),
		OperatedTime: q.str("obd_horaope"),
		OperatorKey:  q.str("obd_cveusu"),
		SalesArea:    q.str("obd_areavta"),
	}
	if q.err != nil {
		badRequest(c, q.err.Error())
		return
	}
	p := pagination.Parse(c)

	rows, total, err := h.targetService.ListDetails(c.Request.Context(), filter, p.Page, p.PerPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{Items: rows, Total: total, Page: p.Page, PerPage: p.PerPage}))
}

// CreateDetail godoc
// @Summary      Create sales target month
// @Tags         sales-targets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateSalesTargetDetailRequest  true  "Month"
// @Success      201      {object}  response.Response{data=model.SalesTargetDetail}
// @Failure      400      {object}  response.Response
// @Router       /api/sales-target-details [post]
func (h *SalesTargetHandler) CreateDetail(c *gin.Context) {
	var req service.CreateSalesTargetDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	d, err := h.targetService.CreateDetail(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, d))
}

// UpdateDetail godoc
// @Summary      Update sales target month
// @Tags         sales-targets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        year     path      int                                     true  "Year"
// @Param        seller   path      int                                     true  "Seller"
// @Param        month    path      int                                     true  "Month"
// @Param        payload  body      service.UpdateSalesTargetDetailRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.SalesTargetDetail}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/sales-target-details/{year}/{seller}/{month} [put]
func (h *SalesTargetHandler) UpdateDetail(c *gin.Context) {
	key, ok := detailKey(c)
	if !ok {
		return
	}
	var req service.UpdateSalesTargetDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	d, err := h.targetService.UpdateDetail(c.Request.Context(), key, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, d))
}

// DeleteDetail godoc
// @Summary      Delete sales target month
// @Tags         sales-targets
// @Produce      json
// @Security     BearerAuth
// @Param        year    path      int  true  "Year"
// @Param        seller  path      int  true  "Seller"
// @Param        month   path      int  true  "Month"
// @Success      200     {object}  response.Response{data=response.DeleteResult}
// @Router       /api/sales-target-details/{year}/{seller}/{month} [delete]
func (h *SalesTargetHandler) DeleteDetail(c *gin.Context) {
	key, ok := detailKey(c)
	if !ok {
		return
	}

	deleted, err := h.targetService.DeleteDetail(c.Request.Context(), key)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Deleted(deleted, "Sales target month "+key.String())))
}
