package input

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
)

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the client used for downloads
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithFS sets the storage service used for the cache
func WithFS(fs afs.Service) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithLogger sets the logger, logrus.StandardLogger by default
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}
