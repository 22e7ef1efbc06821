package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestUpdateProduct() {
	suite.catalog.On("UpdateProduct", mock.Anything, "p-soap", mock.MatchedBy(func(req dto.UpdateProductRequest) bool {
		return req.SalePrice != nil && req.SalePrice.Equal(decimal.NewFromInt(120)) &&
			req.Stock != nil && *req.Stock == 3 && req.Location != nil && *req.Location == "Shelf A" && req.Name == nil
	}), "owner").Return(&domain.Product{
		ProductID: "p-soap", Name: "Soap", Location: "Shelf A", SalePrice: decimal.NewFromInt(120), Stock: 3,
	}, nil).Once()
	suite.catalog.On("LowStockThreshold").Return(5)

	w := suite.do(http.MethodPut, "/api/v1/products/p-soap", `{"salePrice":"120","stock":3,"location":"Shelf A"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProductResponse
	suite.decode(w, &resp)
	suite.Equal("Shelf A", resp.Location)
	suite.True(resp.LowStock)
}

func (suite *HandlersTestSuite) TestUpdateProduct_Invalid() {
	suite.catalog.On("UpdateProduct", mock.Anything, "p-soap", mock.Anything, "owner").
		Return(nil, fmt.Errorf("%w: sale price must be positive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPut, "/api/v1/products/p-soap", `{"salePrice":"0"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "sale price must be positive")
}

func (suite *HandlersTestSuite) TestDeleteProduct() {
	suite.catalog.On("DeleteProduct", mock.Anything, "p-old").Return(nil).Once()
	suite.catalog.On("DeleteProduct", mock.Anything, "p-sold").
		Return(fmt.Errorf("%w: product p-sold is still referenced", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/products/p-old", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/products/p-sold", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestSalesReport() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	suite.reports.On("SalesReport", mock.Anything, from, to).Return(&domain.SalesReport{
		From: from,
		To:   to,
		All:  domain.SalesFigure{Count: 4, Total: decimal.NewFromInt(900)},
		ByType: map[domain.SaleType]domain.SalesFigure{
			domain.SaleCash: {Count: 4, Total: decimal.NewFromInt(900)},
		},
		CreditBilled: decimal.Zero,
		Recovered:    decimal.Zero,
		TopProducts:  []domain.ProductSales{{ProductID: "p-soap", Name: "Soap", Quantity: 9, Revenue: decimal.NewFromInt(900)}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/sales?start=2025-06-01&end=2025-06-07", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.SalesReport
	suite.decode(w, &resp)
	suite.Equal(4, resp.ByType[domain.SaleCash].Count)
	suite.Require().Len(resp.TopProducts, 1)
	suite.Equal("Soap", resp.TopProducts[0].Name)
}

func (suite *HandlersTestSuite) TestSalesReport_DefaultsToOneDay() {
	suite.reports.On("SalesReport", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			from, to := args.Get(1).(time.Time), args.Get(2).(time.Time)
			suite.Equal(24*time.Hour, to.Sub(from))
			suite.Equal(0, from.Hour())
		}).
		Return(&domain.SalesReport{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/sales", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestSalesReport_BadRange() {
	for _, query := range []string{"start=2025-06-07&end=2025-06-01", "start=June"} {
		w := suite.do(http.MethodGet, "/api/v1/reports/sales?"+query, nil)
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}
	suite.reports.AssertNotCalled(suite.T(), "SalesReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCategories() {
	suite.categories.On("ListCategories", mock.Anything, dto.ListGroupsParams{ActiveOnly: true}).
		Return([]domain.Category{{CategoryID: "cat-1", Name: "Drinks", IsActive: true}}, nil).Once()
	suite.categories.On("CreateCategory", mock.Anything, dto.CategoryRequest{Name: "Snacks"}, "owner").
		Return(&domain.Category{CategoryID: "cat-2", Name: "Snacks", IsActive: true}, nil).Once()
	suite.categories.On("SetCategoryActive", mock.Anything, "cat-1", false, "owner").
		Return(&domain.Category{CategoryID: "cat-1", Name: "Drinks"}, nil).Once()
	suite.categories.On("DeleteCategory", mock.Anything, "cat-1", "owner").Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories?active=true", nil)
	suite.Equal(http.StatusOK, w.Code)
	var list dto.ListCategoriesResponse
	suite.decode(w, &list)
	suite.Len(list.Categories, 1)

	w = suite.do(http.MethodPost, "/api/v1/categories", dto.CategoryRequest{Name: "Snacks"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPatch, "/api/v1/categories/cat-1/active", `{"isActive":false}`)
	suite.Equal(http.StatusOK, w.Code)
	var category domain.Category
	suite.decode(w, &category)
	suite.False(category.IsActive)

	w = suite.do(http.MethodDelete, "/api/v1/categories/cat-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestSetCategoryActive_NeedsState() {
	w := suite.do(http.MethodPatch, "/api/v1/categories/cat-1/active", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.categories.AssertNotCalled(suite.T(), "SetCategoryActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestUpdateLocation_DuplicateName() {
	req := dto.LocationRequest{Name: "Store room", Address: "Back"}
	suite.locations.On("UpdateLocation", mock.Anything, "loc-1", req, "owner").
		Return(nil, fmt.Errorf("%w: location Store room", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPut, "/api/v1/locations/loc-1", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestListLocations() {
	suite.locations.On("ListLocations", mock.Anything, dto.ListGroupsParams{}).
		Return([]domain.Location{{LocationID: "loc-1", Name: "Shelf A", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/locations", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLocationsResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Locations, 1)
	suite.Equal("Shelf A", resp.Locations[0].Name)
}

func (suite *HandlersTestSuite) TestListEmployees_SalaryStatus() {
	thisMonth := time.Now().Format(domain.PayrollMonthLayout)
	suite.employees.On("ListEmployees", mock.Anything, dto.ListEmployeesParams{Search: "bil"}).Return([]domain.Employee{
		{EmployeeID: "emp-1", Name: "Bilal", Role: domain.RoleCashier, LastPaidMonth: thisMonth},
		{EmployeeID: "emp-2", Name: "Bilquis", Role: domain.RoleManager},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees?q=bil", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEmployeesResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Employees, 2)
	suite.Equal(domain.SalaryPaid, resp.Employees[0].SalaryStatus)
	suite.Equal(domain.SalaryUnpaid, resp.Employees[1].SalaryStatus)
}

func (suite *HandlersTestSuite) TestCreateEmployee_BadEmail() {
	w := suite.do(http.MethodPost, "/api/v1/employees", `{"name":"Bilal","phone":"0300","email":"not-an-email"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.employees.AssertNotCalled(suite.T(), "CreateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestPaySalary() {
	suite.employees.On("PaySalary", mock.Anything, "emp-1", dto.PaySalaryRequest{}, "owner", mock.Anything).
		Return(&dto.PaySalaryResponse{
			Payment:  domain.SalaryPayment{PaymentID: "pay-1", EmployeeID: "emp-1", Month: "2025-06", Amount: decimal.NewFromInt(30000)},
			Employee: dto.EmployeeResponse{Employee: domain.Employee{EmployeeID: "emp-1"}, SalaryStatus: domain.SalaryPaid},
		}, nil).Once()
	suite.employees.On("PaySalary", mock.Anything, "emp-2", dto.PaySalaryRequest{Month: "2025-06"}, "owner", mock.Anything).
		Return(nil, fmt.Errorf("%w: salary for 2025-06 is already paid", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/employees/emp-1/pay-salary", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PaySalaryResponse
	suite.decode(w, &resp)
	suite.Equal("2025-06", resp.Payment.Month)
	suite.Equal(domain.SalaryPaid, resp.Employee.SalaryStatus)

	w = suite.do(http.MethodPatch, "/api/v1/employees/emp-2/pay-salary", dto.PaySalaryRequest{Month: "2025-06"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestGetEmployee_NotFound() {
	suite.employees.On("GetEmployee", mock.Anything, "missing", mock.Anything).
		Return(nil, fmt.Errorf("%w: employee missing", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
