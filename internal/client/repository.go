package client

import "gorm.io/gorm"

// Repository encapsulates store operations for clients.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Client) error {
	return r.DB.Create(c).Error
}

// ListAll returns every client, newest first.
func (r *Repository) ListAll() ([]Client, error) {
	var list []Client
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Client, error) {
	var c Client
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Replace saves the whole record keyed by its ID (full-object replace).
func (r *Repository) Replace(c *Client) error {
	return r.DB.Save(c).Error
}
