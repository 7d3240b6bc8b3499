package archive

import (
	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/dumps"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new archive feature. A nil client disables it.
func NewFeature(client storage.Client, bucket string, dumpsSvc *dumps.Service, logger *zap.Logger) *Feature {
	f := &Feature{}
	if client != nil {
		f.service = NewService(client, bucket, dumpsSvc, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled reports whether a storage client is configured.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
