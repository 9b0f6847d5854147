package service

import (
	"StudyArchive/internal/model"
	"StudyArchive/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Ошибки работы с записями архива.
var (
	ErrNotFound      = errors.New("archive item not found")
	ErrFileNotFound  = errors.New("file not found for this archive item")
	ErrMissingFields = errors.New("missing required fields: topic, subCategory, featuredFile, ownerId")
)

// ItemService инкапсулирует бизнес-логику записей архива.
type ItemService struct {
	repo repo.ItemRepository
}

func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

// CreateItemInput — входные данные создания записи.
type CreateItemInput struct {
	Topic        string
	SubCategory  string
	FeaturedFile string
	FileType     *string
	FileContent  *string
	OwnerID      string
	FileURL      *string
}

// UpdateItemInput — частичное обновление: nil-поля не трогаются.
type UpdateItemInput struct {
	Topic        *string
	SubCategory  *string
	FeaturedFile *string
	FileType     *string
	FileContent  *string
}

// Create валидирует обязательные поля и создаёт запись
// (вместе со строкой файла в одной транзакции, если передан fileURL).
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	if in.Topic == "" || in.SubCategory == "" || in.FeaturedFile == "" || in.OwnerID == "" {
		return nil, ErrMissingFields
	}
	it := &model.Item{
		Topic:        in.Topic,
		SubCategory:  in.SubCategory,
		FeaturedFile: in.FeaturedFile,
		FileType:     in.FileType,
		FileContent:  in.FileContent,
		OwnerID:      in.OwnerID,
	}
	return s.repo.CreateWithFile(ctx, it, in.FileURL)
}

// List возвращает все записи от новых к старым.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

// Get возвращает запись по id.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// GetFile возвращает строку файла записи.
func (s *ItemService) GetFile(ctx context.Context, itemID int64) (*model.File, error) {
	f, err := s.repo.GetFile(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// Update обновляет только заданные поля записи. OwnerID неизменяем.
func (s *ItemService) Update(ctx context.Context, id int64, in UpdateItemInput) error {
	updates := map[string]any{}
	if in.Topic != nil {
		updates["topic"] = *in.Topic
	}
	if in.SubCategory != nil {
		updates["sub_category"] = *in.SubCategory
	}
	if in.FeaturedFile != nil {
		updates["featured_file"] = *in.FeaturedFile
	}
	if in.FileType != nil {
		updates["file_type"] = *in.FileType
	}
	if in.FileContent != nil {
		updates["file_content"] = *in.FileContent
	}
	err := s.repo.UpdatePartial(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Delete удаляет запись вместе со строкой файла.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteWithFile(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
