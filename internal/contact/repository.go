package contact

import "gorm.io/gorm"

// Repository encapsulates store operations for contact requests.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Contact) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListAll() ([]Contact, error) {
	var list []Contact
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

// SetDraft updates only the isDraft flag.
func (r *Repository) SetDraft(id uint, isDraft bool) error {
	res := r.DB.Model(&Contact{}).Where("id = ?", id).Update("is_draft", isDraft)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) Delete(id uint) error {
	res := r.DB.Delete(&Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
