package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// regrouper writes a category or location row and moves its products in one transaction.
type regrouper struct {
	BaseService
	productRepo portsrepo.ProductTransactionSupport
	txManager   portsrepo.TransactionManager
}

// apply runs write, then renames group value from to on every product. An empty to
// clears the products' assignment.
func (r *regrouper) apply(ctx context.Context, group portsrepo.ProductGroup, from, to, userID string, now time.Time, write func(tx pgx.Tx) error) error {
	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = r.txManager.Rollback(ctx, tx) }()

	if err := write(tx); err != nil {
		return err
	}
	if from != to {
		moved, err := r.productRepo.ReassignGroupInTx(ctx, tx, group, from, to, userID, now)
		if err != nil {
			return err
		}
		if moved > 0 {
			r.LogInfo(ctx, "Products regrouped", slog.String("group", string(group)),
				slog.String("from", from), slog.String("to", to), slog.Int64("products", moved))
		}
	}
	if err := r.txManager.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit %s change: %w", group, err)
	}
	return nil
}

func (r *regrouper) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
		return
	}
	r.LogError(ctx, err, msg, keyvals...)
}

func requiredName(raw, what string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", apperrors.ErrValidation, what)
	}
	return name, nil
}

// --- Categories ---

type categoryService struct {
	regrouper
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category management service.
func NewCategoryService(repos portsrepo.RepositoryProvider) portssvc.CategorySvc {
	return &categoryService{
		regrouper:    regrouper{productRepo: repos.ProductRepo, txManager: repos.TxManager},
		categoryRepo: repos.CategoryRepo,
	}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, params dto.ListGroupsParams) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, params.ActiveOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	name, err := requiredName(req.Name, "category")
	if err != nil {
		return nil, err
	}
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        name,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(time.Now().UTC(), userID),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.logFailure(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	name, err := requiredName(req.Name, "category")
	if err != nil {
		return nil, err
	}
	return s.change(ctx, categoryID, userID, func(c *domain.Category) { c.Name = name })
}

func (s *categoryService) SetCategoryActive(ctx context.Context, categoryID string, active bool, userID string) (*domain.Category, error) {
	return s.change(ctx, categoryID, userID, func(c *domain.Category) { c.IsActive = active })
}

func (s *categoryService) change(ctx context.Context, categoryID, userID string, edit func(*domain.Category)) (*domain.Category, error) {
	current, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	next := *current
	edit(&next)
	now := time.Now().UTC()
	next.LastUpdatedAt, next.LastUpdatedBy = now, userID

	err = s.apply(ctx, portsrepo.GroupCategory, current.Name, next.Name, userID, now, func(tx pgx.Tx) error {
		return s.categoryRepo.UpdateCategoryInTx(ctx, tx, next)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &next, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	current, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	err = s.apply(ctx, portsrepo.GroupCategory, current.Name, "", userID, time.Now().UTC(), func(tx pgx.Tx) error {
		return s.categoryRepo.DeleteCategoryInTx(ctx, tx, categoryID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

// --- Locations ---

type locationService struct {
	regrouper
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates the stock location service.
func NewLocationService(repos portsrepo.RepositoryProvider) portssvc.LocationSvc {
	return &locationService{
		regrouper:    regrouper{productRepo: repos.ProductRepo, txManager: repos.TxManager},
		locationRepo: repos.LocationRepo,
	}
}

var _ portssvc.LocationSvc = (*locationService)(nil)

func (s *locationService) ListLocations(ctx context.Context, params dto.ListGroupsParams) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx, params.ActiveOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list locations")
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *locationService) CreateLocation(ctx context.Context, req dto.LocationRequest, userID string) (*domain.Location, error) {
	name, err := requiredName(req.Name, "location")
	if err != nil {
		return nil, err
	}
	location := domain.Location{
		LocationID:  uuid.NewString(),
		Name:        name,
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		IsActive:    true,
		AuditFields: domain.NewAuditFields(time.Now().UTC(), userID),
	}
	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		s.logFailure(ctx, err, "Failed to save location", slog.String("name", name))
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	s.LogInfo(ctx, "Location created", slog.String("location_id", location.LocationID))
	return &location, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.LocationRequest, userID string) (*domain.Location, error) {
	name, err := requiredName(req.Name, "location")
	if err != nil {
		return nil, err
	}
	return s.change(ctx, locationID, userID, func(l *domain.Location) {
		l.Name = name
		l.Address = strings.TrimSpace(req.Address)
		l.Phone = strings.TrimSpace(req.Phone)
	})
}

func (s *locationService) SetLocationActive(ctx context.Context, locationID string, active bool, userID string) (*domain.Location, error) {
	return s.change(ctx, locationID, userID, func(l *domain.Location) { l.IsActive = active })
}

func (s *locationService) change(ctx context.Context, locationID, userID string, edit func(*domain.Location)) (*domain.Location, error) {
	current, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	next := *current
	edit(&next)
	now := time.Now().UTC()
	next.LastUpdatedAt, next.LastUpdatedBy = now, userID

	err = s.apply(ctx, portsrepo.GroupLocation, current.Name, next.Name, userID, now, func(tx pgx.Tx) error {
		return s.locationRepo.UpdateLocationInTx(ctx, tx, next)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update location", slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return &next, nil
}

func (s *locationService) DeleteLocation(ctx context.Context, locationID, userID string) error {
	current, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return err
	}
	err = s.apply(ctx, portsrepo.GroupLocation, current.Name, "", userID, time.Now().UTC(), func(tx pgx.Tx) error {
		return s.locationRepo.DeleteLocationInTx(ctx, tx, locationID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete location", slog.String("location_id", locationID))
		return fmt.Errorf("failed to delete location: %w", err)
	}
	s.LogInfo(ctx, "Location deleted", slog.String("location_id", locationID))
	return nil
}
