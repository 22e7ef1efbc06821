package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock Catalog Service ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) LowStockThreshold() int {
	return m.Called().Int(0)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock Checkout Service ---
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) AddToCart(ctx context.Context, req dto.AddToCartRequest) (domain.Cart, error) {
	args := m.Called(ctx, req)
	cart, _ := args.Get(0).(domain.Cart)
	return cart, args.Error(1)
}

func (m *MockCheckoutService) UpdateLine(ctx context.Context, productID string, req dto.UpdateLineRequest) (domain.Cart, error) {
	args := m.Called(ctx, productID, req)
	cart, _ := args.Get(0).(domain.Cart)
	return cart, args.Error(1)
}

func (m *MockCheckoutService) UpdateQuantity(ctx context.Context, productID string, req dto.UpdateQuantityRequest) (domain.Cart, error) {
	args := m.Called(ctx, productID, req)
	cart, _ := args.Get(0).(domain.Cart)
	return cart, args.Error(1)
}

func (m *MockCheckoutService) CartSummary(cart domain.Cart) dto.CartResponse {
	return m.Called(cart).Get(0).(dto.CartResponse)
}

func (m *MockCheckoutService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuoteResponse), args.Error(1)
}

func (m *MockCheckoutService) EditTenders(ctx context.Context, req dto.EditTendersRequest) (*dto.EditTendersResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EditTendersResponse), args.Error(1)
}

func (m *MockCheckoutService) Checkout(ctx context.Context, req dto.CheckoutRequest, userID string) (*dto.CheckoutResponse, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CheckoutResponse), args.Error(1)
}

func (m *MockCheckoutService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}

func (m *MockCheckoutService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

var _ portssvc.CheckoutSvcFacade = (*MockCheckoutService)(nil)

// --- Mock Credit Service ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) TemporaryAccounts(ctx context.Context) ([]domain.CreditAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditAccount), args.Error(1)
}

func (m *MockCreditService) RecordTemporaryPayment(ctx context.Context, req dto.TemporaryPaymentRequest, userID string) (*dto.TemporaryPaymentResponse, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TemporaryPaymentResponse), args.Error(1)
}

func (m *MockCreditService) PermanentAccounts(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCreditService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerDetailResponse), args.Error(1)
}

func (m *MockCreditService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCreditService) RecordPayment(ctx context.Context, customerID string, req dto.RecordPaymentRequest, userID string) (*dto.RecordPaymentResponse, error) {
	args := m.Called(ctx, customerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordPaymentResponse), args.Error(1)
}

func (m *MockCreditService) Statement(ctx context.Context, customerID string, from, to *time.Time) (*domain.Statement, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockCreditService) Reminder(ctx context.Context, customerID string) (*creditledger.Reminder, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*creditledger.Reminder), args.Error(1)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock Dashboard Service ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

// --- Mock Auth Service ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

// --- Mock Report Service ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SalesReport(ctx context.Context, from, to time.Time) (*domain.SalesReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

var _ portssvc.ReportSvc = (*MockReportService)(nil)

// --- Mock Category Service ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, params dto.ListGroupsParams) ([]domain.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) SetCategoryActive(ctx context.Context, categoryID string, active bool, userID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, active, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return m.Called(ctx, categoryID, userID).Error(0)
}

var _ portssvc.CategorySvc = (*MockCategoryService)(nil)

// --- Mock Location Service ---
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) ListLocations(ctx context.Context, params dto.ListGroupsParams) ([]domain.Location, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationService) CreateLocation(ctx context.Context, req dto.LocationRequest, userID string) (*domain.Location, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationService) UpdateLocation(ctx context.Context, locationID string, req dto.LocationRequest, userID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationService) SetLocationActive(ctx context.Context, locationID string, active bool, userID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID, active, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationService) DeleteLocation(ctx context.Context, locationID, userID string) error {
	return m.Called(ctx, locationID, userID).Error(0)
}

var _ portssvc.LocationSvc = (*MockLocationService)(nil)

// --- Mock Employee Service ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID string, now time.Time) (*dto.EmployeeDetailResponse, error) {
	args := m.Called(ctx, employeeID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeDetailResponse), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}

func (m *MockEmployeeService) PaySalary(ctx context.Context, employeeID string, req dto.PaySalaryRequest, userID string, now time.Time) (*dto.PaySalaryResponse, error) {
	args := m.Called(ctx, employeeID, req, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaySalaryResponse), args.Error(1)
}

var _ portssvc.EmployeeSvc = (*MockEmployeeService)(nil)
