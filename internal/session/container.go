package session

import "gorm.io/gorm"

type SessionContainer struct {
	Handler *Handler
	Service SessionService
}

func NewSessionContainer(db *gorm.DB, notifier Notifier) *SessionContainer {
	repo := NewRepository(db)
	service := NewService(repo, notifier)
	handler := NewHandler(service)

	return &SessionContainer{
		Handler: handler,
		Service: service,
	}
}
