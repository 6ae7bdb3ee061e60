package progress

import "gorm.io/gorm"

type ProgressContainer struct {
	Handler *Handler
}

func NewProgressContainer(db *gorm.DB) *ProgressContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &ProgressContainer{
		Handler: handler,
	}
}
