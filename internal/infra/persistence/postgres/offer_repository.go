package postgres

import (
	"context"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer together with its details. GORM inserts the
// parent and the association rows in one batch.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	// Update the entity with generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i := range offerM.Details {
		offer.Details[i].ID = offerM.Details[i].ID
		offer.Details[i].OfferID = offerM.ID
	}

	return nil
}

// FindByID retrieves a single offer with its details.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single detail row by its own ID.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by id")
	}

	detail := toOfferDetailDomain(&detailM)

	return &detail, nil
}

// Update saves the offer's scalar fields and all of its details.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":       offer.Title,
			"image":       offer.Image,
			"description": offer.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	for i := range offer.Details {
		detail := &offer.Details[i]
		if err := repo.db.WithContext(ctx).
			Model(&model.OfferDetailModel{}).
			Where("id = ?", detail.ID).
			Updates(map[string]any{
				"title":                 detail.Title,
				"revisions":             detail.Revisions,
				"delivery_time_in_days": detail.DeliveryTimeInDays,
				"price":                 detail.Price,
				"features":              datatypes.NewJSONSlice(detail.Features),
			}).Error; err != nil {
			return errors.Wrap(err, "failed to update offer detail")
		}
	}

	return nil
}

// Delete removes the offer. The database cascades to offer_details.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// List retrieves a page of offers matching the filter plus the total count.
// Derived values (cheapest tier, fastest tier) live on the detail rows, so
// the aggregate filters run as subqueries against offer_details.
func (repo *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OfferModel{})

	if filter.CreatorID != nil {
		query = query.Where("user_id = ?", *filter.CreatorID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where(
			"(SELECT MIN(price) FROM offer_details WHERE offer_details.offer_id = offers.id) >= ?",
			*filter.MinPrice,
		)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM offer_details WHERE offer_details.offer_id = offers.id AND delivery_time_in_days <= ?)",
			*filter.MaxDeliveryTime,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	switch filter.Ordering {
	case "min_price":
		query = query.Order("(SELECT MIN(price) FROM offer_details WHERE offer_details.offer_id = offers.id) ASC")
	case "-min_price":
		query = query.Order("(SELECT MIN(price) FROM offer_details WHERE offer_details.offer_id = offers.id) DESC")
	case "updated_at":
		query = query.Order("updated_at ASC")
	default:
		query = query.Order("updated_at DESC")
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var offerModels []*model.OfferModel
	if err := query.Preload("Details").Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

// Count counts all offers.
func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return count, nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]entity.OfferDetail, 0, len(data.Details))
	for i := range data.Details {
		details = append(details, toOfferDetailDomain(&data.Details[i]))
	}

	return &entity.Offer{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toOfferDetailDomain converts a GORM OfferDetailModel to a domain OfferDetail.
func toOfferDetailDomain(data *model.OfferDetailModel) entity.OfferDetail {
	return entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           []string(data.Features),
		OfferType:          entity.OfferType(data.OfferType),
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	details := make([]model.OfferDetailModel, 0, len(data.Details))
	for _, d := range data.Details {
		details = append(details, model.OfferDetailModel{
			ID:                 d.ID,
			OfferID:            d.OfferID,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           datatypes.NewJSONSlice(d.Features),
			OfferType:          d.OfferType.String(),
		})
	}

	return &model.OfferModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
