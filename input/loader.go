package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/time/rate"
)

var (
	// ErrMissingSession is returned when a download is needed but no session cookie is configured
	ErrMissingSession = errors.New("missing session cookie, set " + SessionEnv)
	// ErrInvalidPuzzle is returned for a year or day outside of the event calendar
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

// FirstYear is the first event year
const FirstYear = 2015

// Loader retrieves puzzle inputs, caching them under Config.CacheURL
type Loader struct {
	config  *Config
	fs      afs.Service
	client  *http.Client
	limiter *rate.Limiter
	logger  logrus.FieldLogger
}

// NewLoader creates a loader, config defaults to DefaultConfig
func NewLoader(config *Config, options ...Option) *Loader {
	if config == nil {
		config = DefaultConfig()
	}
	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 1
	}
	ret := &Loader{
		config:  config,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.client == nil {
		ret.client = &http.Client{Timeout: 30 * time.Second}
	}
	if ret.logger == nil {
		ret.logger = logrus.StandardLogger()
	}
	ret.logger = ret.logger.WithField("component", "input")
	return ret
}

// Validate checks that year and day name an existing puzzle
func Validate(year, day int) error {
	if year < FirstYear {
		return fmt.Errorf("%w: year %d", ErrInvalidPuzzle, year)
	}
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: day %d", ErrInvalidPuzzle, day)
	}
	return nil
}

// CacheURL returns the cache location of the puzzle input
func (l *Loader) CacheURL(year, day int) string {
	return url.Join(l.config.CacheURL, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

// Load returns the puzzle input, downloading and caching it when not cached yet
func (l *Loader) Load(ctx context.Context, year, day int) (string, error) {
	if err := Validate(year, day); err != nil {
		return "", err
	}
	location := l.CacheURL(year, day)
	ok, err := l.fs.Exists(ctx, location)
	if err != nil {
		return "", fmt.Errorf("failed to check cached input %v: %w", location, err)
	}
	if ok {
		data, err := l.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return "", fmt.Errorf("failed to read cached input %v: %w", location, err)
		}
		l.logger.WithField("url", location).Debug("using cached input")
		return string(data), nil
	}
	data, err := l.Fetch(ctx, year, day)
	if err != nil {
		return "", err
	}
	if err = l.fs.Upload(ctx, location, os.FileMode(0644), bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to cache input %v: %w", location, err)
	}
	l.logger.WithFields(logrus.Fields{"year": year, "day": day, "url": location}).Info("cached input")
	return string(data), nil
}

// Fetch downloads the puzzle input bypassing the cache
func (l *Loader) Fetch(ctx context.Context, year, day int) ([]byte, error) {
	if err := Validate(year, day); err != nil {
		return nil, err
	}
	if l.config.Session == "" {
		return nil, ErrMissingSession
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	URL := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(l.config.BaseURL, "/"), year, day)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	request.AddCookie(&http.Cookie{Name: "session", Value: l.config.Session})
	if l.config.UserAgent != "" {
		request.Header.Set("User-Agent", l.config.UserAgent)
	}
	l.logger.WithFields(logrus.Fields{"year": year, "day": day}).Info("downloading input")
	response, err := l.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", URL, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %v: status %d: %s", URL, response.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
