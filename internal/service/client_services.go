package service

import (
	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/store"
	"github.com/studypartner/go-study-partner/internal/validators"
)

type ClientServices struct {
	AuthService  ClientAuthService
	NotesService ClientNotesService
	StudyService ClientStudyService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	validator := validators.NewStudyValidator()

	return &ClientServices{
		AuthService:  NewClientAuthService(localStore, serverAdapter, validator),
		NotesService: NewClientNotesService(serverAdapter, validator),
		StudyService: NewClientStudyService(serverAdapter),
	}
}
