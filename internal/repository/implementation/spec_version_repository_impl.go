package implementation

import (
	"context"
	"errors"
	"strings"

	"kb-search-be/internal/entity"
	"kb-search-be/internal/mapper"
	"kb-search-be/internal/model"
	"kb-search-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SpecVersionRepositoryImpl struct {
	db *gorm.DB
}

func NewSpecVersionRepository(db *gorm.DB) contract.SpecVersionRepository {
	return &SpecVersionRepositoryImpl{db: db}
}

// ResolveLatest matches version labels against the pattern and returns
// the most recently published match. "*" in the pattern acts as a
// wildcard; a plain prefix like "0.6" matches every "0.6..." label. An
// ambiguous pattern therefore resolves to the newest matching release.
func (r *SpecVersionRepositoryImpl) ResolveLatest(ctx context.Context, pattern string) (*entity.SpecVersion, error) {
	like := strings.ReplaceAll(pattern, "*", "%")
	if !strings.Contains(like, "%") {
		like += "%"
	}

	var m model.SpecVersion
	err := r.db.WithContext(ctx).
		Where("version LIKE ?", like).
		Order("published_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapper.SpecVersionToEntity(&m), nil
}
