package userfile

import "gorm.io/gorm"

type UserFileContainer struct {
	Handler *Handler
	Repo    UserFileRepository
}

func NewUserFileContainer(db *gorm.DB) *UserFileContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &UserFileContainer{
		Handler: handler,
		Repo:    repo,
	}
}
