package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"checkmaster/internal/adapter/export"
	request "checkmaster/internal/adapter/http/dto/request"
	response "checkmaster/internal/adapter/http/dto/response"
	"checkmaster/internal/domain/report"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase"
	"checkmaster/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errUnsupportedFormat = pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Use format=csv ou format=xlsx", http.StatusBadRequest)

// ReportHandler serves the finance views and their downloads.

type ReportHandler struct {
	usecase usecase.IReportUseCase
	logger  *zap.Logger
	now     func() time.Time
}

func NewReportHandler(uc usecase.IReportUseCase, log *zap.Logger) *ReportHandler {
	return &ReportHandler{usecase: uc, logger: logger.OrNop(log).Named("report.handler"), now: time.Now}
}

// @Summary      Orders in window
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        from  query  string  false  "Start (RFC 3339 or YYYY-MM-DD), inclusive"
// @Param        to    query  string  false  "End (RFC 3339 or YYYY-MM-DD), exclusive"
// @Success      200  {array}   response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /reports/orders [get]
func (h *ReportHandler) Orders(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	orders, err := h.usecase.Orders(c.Request.Context(), w)
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// @Summary      Totals by client
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        from  query  string  false  "Start, inclusive"
// @Param        to    query  string  false  "End, exclusive"
// @Success      200  {array}   response.ClientSummaryResponse
// @Router       /reports/clients [get]
func (h *ReportHandler) ClientSummaries(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	ss, err := h.usecase.ClientSummaries(c.Request.Context(), w)
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientSummaries(ss))
}

// @Summary      Totals by day
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        from  query  string  false  "Start, inclusive"
// @Param        to    query  string  false  "End, exclusive"
// @Success      200  {array}   response.DailyTotalResponse
// @Router       /reports/daily [get]
func (h *ReportHandler) DailyTotals(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	ds, err := h.usecase.DailyTotals(c.Request.Context(), w)
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDailyTotals(ds))
}

// @Summary      Dashboard
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// @Summary      Export orders
// @Tags         reports
// @Produce      text/csv
// @Security     Bearer
// @Param        from  query  string  false  "Start, inclusive"
// @Param        to    query  string  false  "End, exclusive"
// @Success      200  {file}  file
// @Router       /reports/orders/export [get]
func (h *ReportHandler) ExportOrders(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	orders, err := h.usecase.Orders(c.Request.Context(), w)
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := export.OrdersCSV(&buf, orders); err != nil {
		h.logger.Error("orders export failed", zap.Error(err))
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.attachment(c, export.Filename("Vistorias", "csv", h.now()), export.ContentTypeCSV, buf.Bytes())
}

// @Summary      Export finance report
// @Tags         reports
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Param        format  query  string  false  "csv (default) or xlsx"
// @Param        from    query  string  false  "Start, inclusive"
// @Param        to      query  string  false  "End, exclusive"
// @Success      200  {file}  file
// @Router       /reports/clients/export [get]
func (h *ReportHandler) ExportFinance(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	if format != "csv" && format != "xlsx" {
		c.JSON(errUnsupportedFormat.HTTPStatus, errUnsupportedFormat.ToHTTPError())
		return
	}
	w, ok := h.window(c)
	if !ok {
		return
	}
	orders, err := h.usecase.Orders(c.Request.Context(), w)
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	summaries := report.GroupByClient(orders)

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		contentType = export.ContentTypeXLSX
		err = export.FinanceXLSX(&buf, summaries, orders)
	default:
		contentType = export.ContentTypeCSV
		err = export.FinanceCSV(&buf, summaries)
	}
	if err != nil {
		h.logger.Error("finance export failed", zap.String("format", format), zap.Error(err))
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.attachment(c, export.Filename("Financeiro", format, h.now()), contentType, buf.Bytes())
}

func (h *ReportHandler) window(c *gin.Context) (report.Window, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return report.Window{}, false
	}
	w, err := q.Window()
	if err != nil {
		appErr := errInvalidRequest
		if errors.Is(err, request.ErrInvalidWindow) {
			appErr = pkg.NewDomainErrorSimple("INVALID_WINDOW", "Período inválido", http.StatusBadRequest)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return report.Window{}, false
	}
	return w, true
}

func (h *ReportHandler) attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
