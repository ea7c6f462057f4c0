package get_services

import (
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
)

type PageService interface {
	GetServices() []models.ServiceResponse
}
