package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"silktouch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// likeEscaper neutralizes LIKE wildcards in user input. '!' is used as the
// escape character because backslash literals differ between drivers.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// jsonMemberPattern matches an element of a JSON encoded string array column.
func jsonMemberPattern(value string) string {
	encoded, _ := json.Marshal(value)
	return "%" + likeEscaper.Replace(string(encoded)) + "%"
}

func (r *GORMProductRepository) filtered(ctx context.Context, f ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE ? ESCAPE '!'", containsPattern(f.Brand))
	}
	if f.Size != "" {
		q = q.Where("sizes LIKE ? ESCAPE '!'", jsonMemberPattern(f.Size))
	}
	if f.Color != "" {
		q = q.Where("colors LIKE ? ESCAPE '!'", jsonMemberPattern(f.Color))
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		p := containsPattern(f.Search)
		q = q.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(tags) LIKE ? ESCAPE '!')", p, p, p)
	}
	return q
}

func orderFor(sortKey string) string {
	switch sortKey {
	case SortPriceLow:
		return "price ASC"
	case SortPriceHigh:
		return "price DESC"
	case SortRating:
		return "rating DESC"
	default:
		return "created_at DESC"
	}
}

// List returns one page of products matching the filter and the total match count.
func (r *GORMProductRepository) List(ctx context.Context, f ProductFilter) ([]models.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	products := []models.Product{}
	err := r.filtered(ctx, f).
		Preload("Reviews.User").
		Order(orderFor(f.Sort)).
		Order("id").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// All retrieves the whole catalog ordered by name.
func (r *GORMProductRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product with its reviews.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "product with ID %s", id)
	}
	return &product, nil
}

// GetByIDs loads the products with the given ids keyed by id. Missing ids are absent from the map.
func (r *GORMProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	out := make(map[string]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

// Featured returns up to limit featured products.
func (r *GORMProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Where("featured = ?", true).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}
	return products, nil
}

// Recommend returns the best rated products, featured first on ties, optionally narrowed by category and price ceiling.
func (r *GORMProductRepository) Recommend(ctx context.Context, category string, budget *float64, limit int) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if budget != nil {
		q = q.Where("price <= ?", *budget)
	}
	products := []models.Product{}
	if err := q.Order("rating DESC").Order("featured DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get recommended products: %w", err)
	}
	return products, nil
}

// Suggestions returns names of products whose name or tags contain q.
func (r *GORMProductRepository) Suggestions(ctx context.Context, q string, limit int) ([]string, error) {
	names := []string{}
	p := containsPattern(q)
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(tags) LIKE ? ESCAPE '!'", p, p).
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}
	return names, nil
}

// FilterValues collects the distinct non-empty attribute values present in the catalog.
func (r *GORMProductRepository) FilterValues(ctx context.Context) (*FilterValues, error) {
	values := &FilterValues{}
	for column, dest := range map[string]*[]string{
		"brand":       &values.Brands,
		"category":    &values.Categories,
		"subcategory": &values.Subcategories,
	} {
		var raw []string
		err := r.db.WithContext(ctx).Model(&models.Product{}).Distinct().Order(column).Pluck(column, &raw).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get distinct %s: %w", column, err)
		}
		*dest = nonEmpty(raw)
	}

	var lists []models.Product
	if err := r.db.WithContext(ctx).Select("id", "sizes", "colors").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to get product attributes: %w", err)
	}
	var sizes, colors []string
	for _, p := range lists {
		sizes = append(sizes, p.Sizes...)
		colors = append(colors, p.Colors...)
	}
	values.Sizes = distinctSorted(sizes)
	values.Colors = distinctSorted(colors)
	return values, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func distinctSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (r *GORMProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit("Reviews").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes every column of an existing product. Reviews are managed separately.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(product).Select("*").Omit("id", "created_at", "Reviews").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product and its reviews.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// AddReview stores a review and refreshes the product's aggregate rating.
func (r *GORMProductRepository) AddReview(ctx context.Context, productID string, review *models.Review) (*models.Product, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
		}

		review.ProductID = productID
		if err := tx.Omit("User").Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var ratings []float64
		if err := tx.Model(&models.Review{}).Where("product_id = ?", productID).Pluck("rating", &ratings).Error; err != nil {
			return err
		}
		reviews := make([]models.Review, len(ratings))
		for i, rating := range ratings {
			reviews[i].Rating = rating
		}
		return tx.Model(&models.Product{}).Where("id = ?", productID).
			Update("rating", models.AverageRating(reviews)).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, productID)
}
