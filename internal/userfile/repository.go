package userfile

import (
	"errors"

	"gorm.io/gorm"
)

type UserFileRepository interface {
	Create(f *UserFile) error
	GetByID(id, userID string) (*UserFile, error)
	ListByUser(userID string) ([]*UserFile, error)
	Delete(id, userID string) error
}

type userFileRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserFileRepository {
	return &userFileRepository{db: db}
}

func (r *userFileRepository) Create(f *UserFile) error {
	return r.db.Create(f).Error
}

func (r *userFileRepository) GetByID(id, userID string) (*UserFile, error) {
	var f UserFile
	if err := r.db.First(&f, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *userFileRepository) ListByUser(userID string) ([]*UserFile, error) {
	var files []*UserFile
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *userFileRepository) Delete(id, userID string) error {
	return r.db.Delete(&UserFile{}, "id = ? AND user_id = ?", id, userID).Error
}
