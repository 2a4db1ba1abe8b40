package handler

import (
	"gomessenger/backend/internal/chathub"
	"gomessenger/backend/internal/storage"
	"gomessenger/backend/internal/uploads"
)

// Handler holds the dependencies shared by all HTTP endpoints.
type Handler struct {
	Hub     *chathub.Hub
	Storage storage.Storage
	Uploads *uploads.Store
}

func NewHandler(hub *chathub.Hub, s storage.Storage, up *uploads.Store) *Handler {
	return &Handler{Hub: hub, Storage: s, Uploads: up}
}
