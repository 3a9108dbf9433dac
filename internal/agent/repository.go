package agent

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsulates store operations for agents.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Agent, error) {
	var list []Agent
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByName(name string) (*Agent, error) {
	var a Agent
	if err := r.DB.Where("name = ?", name).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateOrGet returns the agent with the given name, creating it if absent.
// The second return value reports whether a new record was created.
func (r *Repository) CreateOrGet(name, phone, email string) (*Agent, bool, error) {
	existing, err := r.FindByName(name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	a := &Agent{Name: name, Phone: phone, Email: email}
	if err := r.DB.Create(a).Error; err != nil {
		return nil, false, err
	}
	return a, true, nil
}
