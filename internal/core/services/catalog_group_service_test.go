package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/core/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogGroupServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	products    *MockProductRepository
	categories  *MockCategoryRepository
	locations   *MockLocationRepository
	tx          *MockTxManager
	categorySvc portssvc.CategorySvc
	locationSvc portssvc.LocationSvc
}

func (suite *CatalogGroupServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.products = new(MockProductRepository)
	suite.categories = new(MockCategoryRepository)
	suite.locations = new(MockLocationRepository)
	suite.tx = new(MockTxManager)
	repos := portsrepo.RepositoryProvider{
		ProductRepo:  suite.products,
		CategoryRepo: suite.categories,
		LocationRepo: suite.locations,
		TxManager:    suite.tx,
	}
	suite.categorySvc = services.NewCategoryService(repos)
	suite.locationSvc = services.NewLocationService(repos)
}

func (suite *CatalogGroupServiceTestSuite) expectTx(commit bool) {
	suite.tx.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.tx.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()
	if commit {
		suite.tx.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	}
}

func (suite *CatalogGroupServiceTestSuite) drinks() *domain.Category {
	return &domain.Category{CategoryID: "cat-1", Name: "Drinks", IsActive: true}
}

func (suite *CatalogGroupServiceTestSuite) TestCreateCategory() {
	suite.categories.On("SaveCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Snacks" && c.IsActive && c.CreatedBy == "owner" && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.categorySvc.CreateCategory(suite.ctx, dto.CategoryRequest{Name: "  Snacks "}, "owner")

	suite.Require().NoError(err)
	suite.Equal("Snacks", category.Name)
	suite.categories.AssertExpectations(suite.T())
}

func (suite *CatalogGroupServiceTestSuite) TestCreateCategory_BlankName() {
	_, err := suite.categorySvc.CreateCategory(suite.ctx, dto.CategoryRequest{Name: "  "}, "owner")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.categories.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestUpdateCategory_RenamesProducts() {
	suite.categories.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.drinks(), nil).Once()
	suite.expectTx(true)
	suite.categories.On("UpdateCategoryInTx", suite.ctx, mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Beverages" && c.IsActive && c.LastUpdatedBy == "owner"
	})).Return(nil).Once()
	suite.products.On("ReassignGroupInTx", suite.ctx, mock.Anything, portsrepo.GroupCategory, "Drinks", "Beverages", "owner", mock.Anything).
		Return(int64(3), nil).Once()

	category, err := suite.categorySvc.UpdateCategory(suite.ctx, "cat-1", dto.CategoryRequest{Name: "Beverages"}, "owner")

	suite.Require().NoError(err)
	suite.Equal("Beverages", category.Name)
	suite.products.AssertExpectations(suite.T())
	suite.tx.AssertExpectations(suite.T())
}

func (suite *CatalogGroupServiceTestSuite) TestSetCategoryActive_LeavesProductsAlone() {
	suite.categories.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.drinks(), nil).Once()
	suite.expectTx(true)
	suite.categories.On("UpdateCategoryInTx", suite.ctx, mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Drinks" && !c.IsActive
	})).Return(nil).Once()

	category, err := suite.categorySvc.SetCategoryActive(suite.ctx, "cat-1", false, "owner")

	suite.Require().NoError(err)
	suite.False(category.IsActive)
	suite.products.AssertNotCalled(suite.T(), "ReassignGroupInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestUpdateCategory_DuplicateNameRollsBack() {
	suite.categories.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.drinks(), nil).Once()
	suite.expectTx(false)
	suite.categories.On("UpdateCategoryInTx", suite.ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.categorySvc.UpdateCategory(suite.ctx, "cat-1", dto.CategoryRequest{Name: "Snacks"}, "owner")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.tx.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.products.AssertNotCalled(suite.T(), "ReassignGroupInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestDeleteCategory_ClearsProducts() {
	suite.categories.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.drinks(), nil).Once()
	suite.expectTx(true)
	suite.categories.On("DeleteCategoryInTx", suite.ctx, mock.Anything, "cat-1").Return(nil).Once()
	suite.products.On("ReassignGroupInTx", suite.ctx, mock.Anything, portsrepo.GroupCategory, "Drinks", "", "owner", mock.Anything).
		Return(int64(2), nil).Once()

	suite.Require().NoError(suite.categorySvc.DeleteCategory(suite.ctx, "cat-1", "owner"))
	suite.products.AssertExpectations(suite.T())
	suite.tx.AssertExpectations(suite.T())
}

func (suite *CatalogGroupServiceTestSuite) TestDeleteCategory_ReassignFailureRollsBack() {
	suite.categories.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.drinks(), nil).Once()
	suite.expectTx(false)
	suite.categories.On("DeleteCategoryInTx", suite.ctx, mock.Anything, "cat-1").Return(nil).Once()
	suite.products.On("ReassignGroupInTx", suite.ctx, mock.Anything, portsrepo.GroupCategory, "Drinks", "", "owner", mock.Anything).
		Return(int64(0), errors.New("connection reset")).Once()

	err := suite.categorySvc.DeleteCategory(suite.ctx, "cat-1", "owner")

	suite.Error(err)
	suite.tx.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestDeleteCategory_NotFound() {
	suite.categories.On("FindCategoryByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.categorySvc.DeleteCategory(suite.ctx, "missing", "owner")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.tx.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestListCategories_ActiveOnly() {
	expected := []domain.Category{*suite.drinks()}
	suite.categories.On("ListCategories", suite.ctx, true).Return(expected, nil).Once()

	categories, err := suite.categorySvc.ListCategories(suite.ctx, dto.ListGroupsParams{ActiveOnly: true})

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
}

func (suite *CatalogGroupServiceTestSuite) TestCreateLocation() {
	suite.locations.On("SaveLocation", suite.ctx, mock.MatchedBy(func(l domain.Location) bool {
		return l.Name == "Store room" && l.Phone == "0300" && l.IsActive
	})).Return(nil).Once()

	location, err := suite.locationSvc.CreateLocation(suite.ctx, dto.LocationRequest{Name: "Store room ", Phone: " 0300"}, "owner")

	suite.Require().NoError(err)
	suite.Equal("Store room", location.Name)
}

func (suite *CatalogGroupServiceTestSuite) TestUpdateLocation_KeepsNameSkipsReassign() {
	current := &domain.Location{LocationID: "loc-1", Name: "Shelf A", Address: "Front", IsActive: true}
	suite.locations.On("FindLocationByID", suite.ctx, "loc-1").Return(current, nil).Once()
	suite.expectTx(true)
	suite.locations.On("UpdateLocationInTx", suite.ctx, mock.Anything, mock.MatchedBy(func(l domain.Location) bool {
		return l.Name == "Shelf A" && l.Address == "Back wall"
	})).Return(nil).Once()

	location, err := suite.locationSvc.UpdateLocation(suite.ctx, "loc-1", dto.LocationRequest{Name: "Shelf A", Address: "Back wall"}, "owner")

	suite.Require().NoError(err)
	suite.Equal("Back wall", location.Address)
	suite.products.AssertNotCalled(suite.T(), "ReassignGroupInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CatalogGroupServiceTestSuite) TestDeleteLocation_ClearsProducts() {
	suite.locations.On("FindLocationByID", suite.ctx, "loc-1").Return(&domain.Location{LocationID: "loc-1", Name: "Shelf A"}, nil).Once()
	suite.expectTx(true)
	suite.locations.On("DeleteLocationInTx", suite.ctx, mock.Anything, "loc-1").Return(nil).Once()
	suite.products.On("ReassignGroupInTx", suite.ctx, mock.Anything, portsrepo.GroupLocation, "Shelf A", "", "owner", mock.Anything).
		Return(int64(0), nil).Once()

	suite.Require().NoError(suite.locationSvc.DeleteLocation(suite.ctx, "loc-1", "owner"))
	suite.products.AssertExpectations(suite.T())
}

func TestCatalogGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogGroupServiceTestSuite))
}
