package repo

import (
	"StudyArchive/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestItemRepository_CreateWithFile(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := &model.Item{
		Topic:        "Math",
		SubCategory:  "Algebra",
		FeaturedFile: "notes.txt",
		FileType:     strPtr("text/plain"),
		FileContent:  strPtr("hello"),
		OwnerID:      "u1",
	}
	created, err := r.CreateWithFile(ctx, it, strPtr("data:text/plain;base64,aGVsbG8="))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.File)
	assert.Equal(t, created.ID, created.File.ItemID)

	// файл действительно в БД
	f, err := r.GetFile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGVsbG8=", f.FileURL)

	// запись без файла
	noFile := &model.Item{Topic: "Physics", SubCategory: "Optics", FeaturedFile: "lab.bin", OwnerID: "guest"}
	created2, err := r.CreateWithFile(ctx, noFile, nil)
	require.NoError(t, err)
	assert.Nil(t, created2.File)
	_, err = r.GetFile(ctx, created2.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	a := &model.Item{Topic: "ListA", SubCategory: "s", FeaturedFile: "a.txt", OwnerID: "u"}
	b := &model.Item{Topic: "ListB", SubCategory: "s", FeaturedFile: "b.txt", OwnerID: "u"}
	_, err := r.CreateWithFile(ctx, a, nil)
	require.NoError(t, err)
	_, err = r.CreateWithFile(ctx, b, strPtr("data:application/pdf;base64,AA=="))
	require.NoError(t, err)

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(items), 2)

	// позже созданная запись идёт первой
	idxA, idxB := -1, -1
	for i, it := range items {
		switch it.Topic {
		case "ListA":
			idxA = i
		case "ListB":
			idxB = i
			// файл подгружен вместе с записью
			require.NotNil(t, it.File)
			assert.Equal(t, "data:application/pdf;base64,AA==", it.File.FileURL)
		}
	}
	require.NotEqual(t, -1, idxA)
	require.NotEqual(t, -1, idxB)
	assert.Less(t, idxB, idxA)
}

func TestItemRepository_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := &model.Item{Topic: "Old", SubCategory: "OldSub", FeaturedFile: "f.txt", OwnerID: "u1"}
	_, err := r.CreateWithFile(ctx, it, nil)
	require.NoError(t, err)

	// обновляем только topic; sub_category должна остаться прежней
	err = r.UpdatePartial(ctx, it.ID, map[string]any{"topic": "New"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Topic)
	assert.Equal(t, "OldSub", got.SubCategory)
	assert.Equal(t, "u1", got.OwnerID)

	// несуществующий id
	err = r.UpdatePartial(ctx, 999999, map[string]any{"topic": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_DeleteCascadesToFile(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := &model.Item{Topic: "Del", SubCategory: "s", FeaturedFile: "gone.pdf", OwnerID: "u1"}
	_, err := r.CreateWithFile(ctx, it, strPtr("data:application/pdf;base64,AA=="))
	require.NoError(t, err)

	require.NoError(t, r.DeleteWithFile(ctx, it.ID))

	// и запись, и строка файла удалены
	_, err = r.GetByID(ctx, it.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = r.GetFile(ctx, it.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// повторное удаление — not found
	assert.ErrorIs(t, r.DeleteWithFile(ctx, it.ID), gorm.ErrRecordNotFound)
}
