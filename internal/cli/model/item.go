package model

// Item — клиентское представление записи архива, как её отдаёт API.
type Item struct {
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

// DeclaredType возвращает объявленный MIME или пустую строку.
func (it Item) DeclaredType() string {
	if it.FileType != nil {
		return *it.FileType
	}
	return ""
}

// InlineContent возвращает встроенное содержимое или пустую строку.
func (it Item) InlineContent() string {
	if it.FileContent != nil {
		return *it.FileContent
	}
	return ""
}

// RemoteURL возвращает сохранённый URL файла или пустую строку.
func (it Item) RemoteURL() string {
	if it.FileURL != nil {
		return *it.FileURL
	}
	return ""
}
