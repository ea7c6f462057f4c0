package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
)

type Handler struct {
	service PageService
}

func NewHandler(service PageService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/services
// Каталог услуг, одинаковый для всех посетителей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetServices())
}
