package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles staff records and salary payments.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvc
	now             func() time.Time
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvc) {
	h := &employeeHandler{employeeService: employeeService, now: time.Now}

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
		employees.PATCH("/:employeeID/pay-salary", h.paySalary)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Staff with this month's salary status.
// @Tags employees
// @Produce json
// @Param q query string false "Search by name, phone or role"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees, h.now()))
}

// getEmployee godoc
// @Summary Get an employee
// @Description The employee with their salary history.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("employee_id", employeeID))

	resp, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}
	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(*employee, h.now()))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.EmployeeRequest true "Employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("employee_id", employeeID))
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(*employee, h.now()))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param employeeID path string true "Employee ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("employee_id", employeeID))

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondError(c, logger, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// paySalary godoc
// @Summary Pay an employee's salary
// @Description Records one month's salary. An empty body pays the current month at the employee's salary.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param payment body dto.PaySalaryRequest false "Month and amount"
// @Success 200 {object} dto.PaySalaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Month already paid"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/pay-salary [patch]
func (h *employeeHandler) paySalary(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("employee_id", employeeID))
	var req dto.PaySalaryRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, logger, err)
			return
		}
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.employeeService.PaySalary(c.Request.Context(), employeeID, req, userID, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to pay salary")
		return
	}
	logger.Info("Salary paid", slog.String("month", resp.Payment.Month))
	c.JSON(http.StatusOK, resp)
}
