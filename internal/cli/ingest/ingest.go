package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"StudyArchive/internal/cli/api"
	"StudyArchive/internal/filetype"
	"StudyArchive/internal/validation"
)

// State — фаза одной попытки загрузки файла в архив.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateReading
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateReading:
		return "reading"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// AllowedTypes — закрытый список типов, принимаемых в архив.
// Элемент "image/*" и "video/*" — шаблоны по префиксу.
var AllowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"image/*",
	"video/*",
}

// Ошибки конвейера загрузки.
var (
	ErrValidation = errors.New("ingest: validation failed")
	ErrSubmit     = errors.New("ingest: submit failed")
)

// ArchiveStore — порт сохранения записей; его реализует REST-клиент.
type ArchiveStore interface {
	CreateItem(in api.CreateItemRequest) (int64, error)
	UpdateItem(id int64, in api.UpdateItemRequest) error
}

// Pipeline проводит одну загрузку через фазы:
// Idle → Validating → Reading → Submitting → Success/Failed.
// Ничего не сохраняется, пока валидация не пройдена.
type Pipeline struct {
	Store       ArchiveStore
	MaxUploadMB int
	// OnState, если задан, вызывается на каждом переходе фаз.
	OnState func(State)
}

// UploadInput — входные данные попытки загрузки.
type UploadInput struct {
	Path        string
	Topic       string
	SubCategory string
	// DeclaredMime — тип, объявленный вызывающим; пусто → определяется по содержимому.
	DeclaredMime string
	// Owner — логин текущей сессии; пусто → "guest".
	Owner string
}

// Result — исход попытки загрузки.
type Result struct {
	ID       int64
	State    State
	Message  string
	FileType string
}

func (p *Pipeline) to(s State) {
	if p.OnState != nil {
		p.OnState(s)
	}
}

func (p *Pipeline) fail(msg string, base error) (*Result, error) {
	p.to(StateFailed)
	return &Result{State: StateFailed, Message: msg}, fmt.Errorf("%w: %s", base, msg)
}

// Upload проводит файл через все фазы и возвращает id созданной записи.
func (p *Pipeline) Upload(in UploadInput) (*Result, error) {
	p.to(StateValidating)

	for _, check := range []validation.Result{
		validation.ValidateRequired(in.Topic, "Topic", nil),
		validation.ValidateRequired(in.SubCategory, "Sub category", nil),
		validation.ValidateRequired(in.Path, "File", nil),
	} {
		if !check.IsValid {
			return p.fail(check.Message, ErrValidation)
		}
	}

	info, err := os.Stat(in.Path)
	if err != nil {
		return p.fail(fmt.Sprintf("cannot read file: %v", err), ErrValidation)
	}
	maxMB := p.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 10
	}
	if res := validation.ValidateFileSize(info.Size(), maxMB, nil); !res.IsValid {
		return p.fail(res.Message, ErrValidation)
	}

	data, err := os.ReadFile(in.Path)
	if err != nil {
		return p.fail(fmt.Sprintf("cannot read file: %v", err), ErrValidation)
	}
	mime := in.DeclaredMime
	if mime == "" {
		mime = filetype.Detect(data)
	}
	if res := validation.ValidateFileType(mime, AllowedTypes, nil); !res.IsValid {
		return p.fail(res.Message, ErrValidation)
	}

	p.to(StateReading)
	dataURL := filetype.BuildDataURL(mime, data)
	var textContent *string
	if mime == "text/plain" || filetype.Ext(in.Path) == "txt" {
		s := string(data)
		textContent = &s
	}

	p.to(StateSubmitting)
	owner := in.Owner
	if owner == "" {
		owner = "guest"
	}
	id, err := p.Store.CreateItem(api.CreateItemRequest{
		Topic:        in.Topic,
		SubCategory:  in.SubCategory,
		FeaturedFile: filepath.Base(in.Path),
		FileType:     &mime,
		FileContent:  textContent,
		OwnerID:      owner,
		FileURL:      &dataURL,
	})
	if err != nil {
		return p.fail("Failed to save archive item", ErrSubmit)
	}

	p.to(StateSuccess)
	// попытка завершена, конвейер снова свободен
	p.to(StateIdle)
	return &Result{ID: id, State: StateSuccess, FileType: mime}, nil
}

// UpdateMeta обновляет тему и категорию существующей записи.
// Файл не перечитывается: фаза Reading пропускается.
func (p *Pipeline) UpdateMeta(id int64, topic, subCategory string) error {
	p.to(StateValidating)
	for _, check := range []validation.Result{
		validation.ValidateRequired(topic, "Topic", nil),
		validation.ValidateRequired(subCategory, "Sub category", nil),
	} {
		if !check.IsValid {
			p.to(StateFailed)
			return fmt.Errorf("%w: %s", ErrValidation, check.Message)
		}
	}

	p.to(StateSubmitting)
	if err := p.Store.UpdateItem(id, api.UpdateItemRequest{
		Topic:       &topic,
		SubCategory: &subCategory,
	}); err != nil {
		p.to(StateFailed)
		return fmt.Errorf("%w: %v", ErrSubmit, err)
	}

	p.to(StateSuccess)
	p.to(StateIdle)
	return nil
}
