package input_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/aoc/input"
)

func newServer(t *testing.T, hits *int32) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Puzzle inputs differ by user.  Please log in to get your puzzle input."))
			return
		}
		if r.URL.Path != "/2015/day/3/input" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("^>v<\n"))
	}))
	t.Cleanup(server.Close)
	return server
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestLoader_Load(t *testing.T) {
	var hits int32
	server := newServer(t, &hits)
	config := &input.Config{
		Session:           "secret",
		CacheURL:          "mem://localhost/aoc/loader",
		BaseURL:           server.URL,
		RequestsPerMinute: 6000,
	}
	loader := input.NewLoader(config, input.WithHTTPClient(server.Client()), input.WithLogger(testLogger()))
	ctx := context.Background()

	text, err := loader.Load(ctx, 2015, 3)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "^>v<\n", text)
	assert.Equal(t, "mem://localhost/aoc/loader/2015/03.txt", loader.CacheURL(2015, 3))

	cached, err := afs.New().DownloadWithURL(ctx, loader.CacheURL(2015, 3))
	assert.Nil(t, err)
	assert.Equal(t, "^>v<\n", string(cached))

	text, err = loader.Load(ctx, 2015, 3)
	assert.Nil(t, err)
	assert.Equal(t, "^>v<\n", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoader_Errors(t *testing.T) {
	var hits int32
	server := newServer(t, &hits)
	ctx := context.Background()

	var testCases = []struct {
		description string
		session     string
		year        int
		day         int
		expectErr   error
		expectText  string
	}{
		{description: "day out of range", session: "secret", year: 2015, day: 26, expectErr: input.ErrInvalidPuzzle},
		{description: "year before first event", session: "secret", year: 2014, day: 1, expectErr: input.ErrInvalidPuzzle},
		{description: "no session", session: "", year: 2015, day: 3, expectErr: input.ErrMissingSession},
		{description: "rejected session", session: "wrong", year: 2015, day: 3, expectText: "status 400"},
		{description: "missing puzzle", session: "secret", year: 2015, day: 4, expectText: "status 404"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			loader := input.NewLoader(&input.Config{
				Session:           testCase.session,
				CacheURL:          "mem://localhost/aoc/errors",
				BaseURL:           server.URL,
				RequestsPerMinute: 6000,
			}, input.WithHTTPClient(server.Client()), input.WithLogger(testLogger()))
			_, err := loader.Load(ctx, testCase.year, testCase.day)
			if !assert.NotNil(t, err) {
				return
			}
			if testCase.expectErr != nil {
				assert.True(t, errors.Is(err, testCase.expectErr), err.Error())
			}
			if testCase.expectText != "" {
				assert.True(t, strings.Contains(err.Error(), testCase.expectText), err.Error())
			}
		})
	}
}

type unreadableCache struct {
	afs.Service
}

func (u *unreadableCache) Exists(ctx context.Context, URL string, options ...storage.Option) (bool, error) {
	return false, os.ErrPermission
}

func TestLoader_UnreadableCache(t *testing.T) {
	var hits int32
	server := newServer(t, &hits)
	loader := input.NewLoader(&input.Config{
		Session:           "secret",
		CacheURL:          "mem://localhost/aoc/unreadable",
		BaseURL:           server.URL,
		RequestsPerMinute: 6000,
	}, input.WithHTTPClient(server.Client()), input.WithFS(&unreadableCache{Service: afs.New()}), input.WithLogger(testLogger()))

	_, err := loader.Load(context.Background(), 2015, 3)
	if !assert.NotNil(t, err) {
		return
	}
	assert.True(t, errors.Is(err, os.ErrPermission), err.Error())
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "no download when the cache cannot be checked")
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	location := "mem://localhost/aoc/config.yaml"
	err := fs.Upload(ctx, location, os.FileMode(0644), strings.NewReader(`
session: from-file
cacheURL: mem://localhost/aoc/cache
requestsPerMinute: 5
`))
	if !assert.Nil(t, err) {
		return
	}

	t.Setenv(input.SessionEnv, "")
	t.Setenv(input.CacheEnv, "")
	config, err := input.LoadConfig(ctx, location)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "from-file", config.Session)
	assert.Equal(t, "mem://localhost/aoc/cache", config.CacheURL)
	assert.Equal(t, 5, config.RequestsPerMinute)
	assert.Equal(t, "https://adventofcode.com", config.BaseURL)

	t.Setenv(input.SessionEnv, "from-env")
	config, err = input.LoadConfig(ctx, location)
	assert.Nil(t, err)
	assert.Equal(t, "from-env", config.Session)

	_, err = input.LoadConfig(ctx, "mem://localhost/aoc/missing.yaml")
	assert.NotNil(t, err)
}

func TestConfig_Validate(t *testing.T) {
	config := input.DefaultConfig()
	assert.Nil(t, config.Validate())
	config.RequestsPerMinute = 0
	assert.NotNil(t, config.Validate())
}
