package handlers

import (
	"andes-autoparts/internal/auth"
	"andes-autoparts/internal/catalog"
)

type Handler struct {
	auth    *auth.Service
	catalog *catalog.Service
}

func New(authSvc *auth.Service, catalogSvc *catalog.Service) *Handler {
	return &Handler{auth: authSvc, catalog: catalogSvc}
}
