package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/basilogast/portfolio-server/internal/service"
	"github.com/basilogast/portfolio-server/internal/storage"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	records service.RecordStore
	contact service.ContactSender
	objects storage.ObjectStore
	logger  *logrus.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(records service.RecordStore, contact service.ContactSender, objects storage.ObjectStore, logger *logrus.Logger) *API {
	return &API{
		records: records,
		contact: contact,
		objects: objects,
		logger:  logger,
	}
}

func (a *API) logError(err error, message string, fields logrus.Fields) {
	if a.logger == nil || err == nil {
		return
	}

	entry := a.logger.WithError(err)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(message)
}
