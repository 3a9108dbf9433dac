package agreement

import "gorm.io/gorm"

// Repository encapsulates store operations for agreements. List methods
// return fresh snapshots; callers feed them into the pure aggregation
// functions instead of mutating shared state.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Agreement) error {
	return r.DB.Create(a).Error
}

// CreateBatch persists a bulk intake submission in one insert.
func (r *Repository) CreateBatch(list []*Agreement) error {
	if len(list) == 0 {
		return nil
	}
	return r.DB.Create(&list).Error
}

// ListAll returns every agreement, newest first.
func (r *Repository) ListAll() ([]Agreement, error) {
	var list []Agreement
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Agreement, error) {
	var a Agreement
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateColumns saves only the named columns of a, including zero and nil
// values (needed to clear completed_at).
func (r *Repository) UpdateColumns(a *Agreement, cols []string) error {
	return r.DB.Model(&Agreement{ID: a.ID}).Select(cols).Updates(a).Error
}
