package repo

import (
	"StudyArchive/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к записям архива и их файлам.
type ItemRepository interface {
	// CreateWithFile создаёт запись и (если fileURL задан) строку файла
	// в одной транзакции: либо обе строки, либо ни одной.
	CreateWithFile(ctx context.Context, item *model.Item, fileURL *string) (*model.Item, error)

	// List возвращает записи от новых к старым, каждая с подгруженным файлом.
	List(ctx context.Context) ([]model.Item, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// GetFile возвращает строку файла записи или gorm.ErrRecordNotFound.
	GetFile(ctx context.Context, itemID int64) (*model.File, error)

	// UpdatePartial обновляет только переданные поля (семантика COALESCE).
	UpdatePartial(ctx context.Context, id int64, updates map[string]any) error

	// DeleteWithFile удаляет запись и каскадно её строку файла.
	DeleteWithFile(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт GORM-реализацию репозитория записей архива.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) CreateWithFile(ctx context.Context, item *model.Item, fileURL *string) (*model.Item, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if fileURL != nil && *fileURL != "" {
			f := model.File{ItemID: item.ID, FileURL: *fileURL}
			if err := tx.Create(&f).Error; err != nil {
				return err
			}
			item.File = &f
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("File").
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Preload("File").First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) GetFile(ctx context.Context, itemID int64) (*model.File, error) {
	var f model.File
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *itemRepo) UpdatePartial(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Select("id").First(&it, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&model.Item{}).Where("id = ?", id).Updates(updates).Error
	})
}

func (r *itemRepo) DeleteWithFile(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// каскад на строку файла: SQLite без включённых FK его не сделает,
		// поэтому удаляем явно в той же транзакции
		if err := tx.Where("item_id = ?", id).Delete(&model.File{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}
