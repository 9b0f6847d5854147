package handlers

import (
	"StudyArchive/internal/config"
	"StudyArchive/internal/model"
	"StudyArchive/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD записей архива.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер записей архива.
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// CreateItemRequest — тело запроса создания записи.
type CreateItemRequest struct {
	Topic        string  `json:"topic"`
	SubCategory  string  `json:"subCategory"`
	FeaturedFile string  `json:"featuredFile"`
	FileType     *string `json:"fileType,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
	OwnerID      string  `json:"ownerId"`
	FileURL      *string `json:"fileUrl,omitempty"`
}

// UpdateItemRequest — частичное обновление; отсутствующие поля не меняются.
type UpdateItemRequest struct {
	Topic        *string `json:"topic,omitempty"`
	SubCategory  *string `json:"subCategory,omitempty"`
	FeaturedFile *string `json:"featuredFile,omitempty"`
	FileType     *string `json:"fileType,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
}

// ItemDTO — запись архива в ответах API.
type ItemDTO struct {
	ID           int64   `json:"id"`
	Topic        string  `json:"topic"`
	SubCategory  string  `json:"subCategory"`
	FeaturedFile string  `json:"featuredFile"`
	FileType     *string `json:"fileType,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
	OwnerID      string  `json:"ownerId"`
	CreatedAt    string  `json:"createdAt"`
	FileURL      *string `json:"fileUrl,omitempty"`
}

func toItemDTO(it model.Item) ItemDTO {
	dto := ItemDTO{
		ID:           it.ID,
		Topic:        it.Topic,
		SubCategory:  it.SubCategory,
		FeaturedFile: it.FeaturedFile,
		FileType:     it.FileType,
		FileContent:  it.FileContent,
		OwnerID:      it.OwnerID,
		CreatedAt:    it.CreatedAt.UTC().Format(time.RFC3339),
	}
	if it.File != nil {
		dto.FileURL = &it.File.FileURL
	}
	return dto
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create создаёт запись архива (и строку файла, если передан fileUrl).
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.ItemService.Create(r.Context(), service.CreateItemInput{
		Topic:        req.Topic,
		SubCategory:  req.SubCategory,
		FeaturedFile: req.FeaturedFile,
		FileType:     req.FileType,
		FileContent:  req.FileContent,
		OwnerID:      req.OwnerID,
		FileURL:      req.FileURL,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields: topic, subCategory, featuredFile, ownerId")
	case err != nil:
		h.Logger.Errorw("Create: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create archive item")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"id":      it.ID,
			"message": "Archive item created successfully",
		})
	}
}

// List возвращает все записи архива от новых к старым.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch archive items")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    lo.Map(items, func(it model.Item, _ int) ItemDTO { return toItemDTO(it) }),
	})
}

// Get возвращает запись по id.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	it, err := h.ItemService.Get(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Archive item not found")
	case err != nil:
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch archive item")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": toItemDTO(*it)})
	}
}

// GetFile возвращает строку файла записи.
func (h *ItemHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	f, err := h.ItemService.GetFile(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		writeError(w, http.StatusNotFound, "File not found for this archive item")
	case err != nil:
		h.Logger.Errorw("GetFile: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch archive file")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id":            f.ID,
				"archiveItemId": f.ItemID,
				"fileUrl":       f.FileURL,
				"createdAt":     f.CreatedAt.UTC().Format(time.RFC3339),
			},
		})
	}
}

// Update частично обновляет запись.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.ItemService.Update(r.Context(), id, service.UpdateItemInput{
		Topic:        req.Topic,
		SubCategory:  req.SubCategory,
		FeaturedFile: req.FeaturedFile,
		FileType:     req.FileType,
		FileContent:  req.FileContent,
	})
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Archive item not found")
	case err != nil:
		h.Logger.Errorw("Update: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update archive item")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Archive item updated successfully"})
	}
}

// Delete удаляет запись вместе со строкой файла.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.ItemService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Archive item not found")
	case err != nil:
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete archive item")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Archive item deleted successfully"})
	}
}
