// Package webapi provides the HTTP surface of the feedback classification
// service: a single check endpoint plus recent-results history.
package webapi

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/feedguard/feedguard/lib/feedback"
)

// Server is a web API server.
type Server struct {
	Config
	cache   cache.Cache[string, feedback.Result]
	history *feedback.LastResults
}

// Config defines server parameters
type Config struct {
	Version     string        // version to show in /ping
	ListenAddr  string        // listen address
	Classifier  Classifier    // classification engine
	AuthPasswd  string        // basic auth password for user "feedback", disabled if empty
	AbuseLogger AbuseLogger   // optional audit logger for abusive submissions
	HistorySize int           // number of recent results to keep
	CacheTTL    time.Duration // ttl for the classification result cache
	Dbg         bool          // debug mode
}

// Classifier is a classification engine interface.
type Classifier interface {
	Classify(req feedback.Request) feedback.Result
}

// AbuseLogger records feedback classified as abusive.
type AbuseLogger interface {
	Log(text string, res feedback.Result)
}

// AbuseLoggerFunc is a functional adapter for AbuseLogger.
type AbuseLoggerFunc func(text string, res feedback.Result)

// Log records abusive feedback
func (f AbuseLoggerFunc) Log(text string, res feedback.Result) { f(text, res) }

const maxCachedResults = 10000

// NewServer creates a new web API server. Classification is deterministic
// over immutable stores, so caching results by text is behavior-preserving.
func NewServer(config Config) *Server {
	if config.HistorySize <= 0 {
		config.HistorySize = 100
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = 5 * time.Minute
	}
	return &Server{
		Config:  config,
		cache:   cache.NewCache[string, feedback.Result]().WithMaxKeys(maxCachedResults).WithTTL(config.CacheTTL),
		history: feedback.NewLastResults(config.HistorySize),
	}
}

// Run starts the server and accepts classification requests until the
// context is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.ListenAddr, Handler: s.routes(), ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes() *routegroup.Bundle {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("feedguard", "feedguard", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(tollbooth.NewLimiter(50, nil)))
	router.Use(rest.SizeLimit(64 * 1024)) // 64K max request size

	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
		router.Use(rest.BasicAuthWithPrompt("feedback", s.AuthPasswd))
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	router.HandleFunc("POST /check", s.checkHandler)
	router.HandleFunc("GET /history", s.historyHandler)
	return router
}

// checkHandler handles POST /check request. It gets feedback text from the
// request body and returns the classification result.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	req := feedback.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return
	}

	key := resultKey(req.Text)
	if res, ok := s.cache.Get(key); ok {
		rest.RenderJSON(w, res)
		return
	}

	res := s.Classifier.Classify(req)
	s.cache.Set(key, res, s.CacheTTL)
	s.history.Push(req.Text, res)
	log.Printf("[DEBUG] classified %s: %s, checks: %s", req.String(), res.String(), feedback.ChecksToString(res.Checks))

	if res.Classification == feedback.Abusive && s.AbuseLogger != nil {
		s.AbuseLogger.Log(req.Text, res)
	}
	rest.RenderJSON(w, res)
}

// historyHandler handles GET /history?n=10 request, returns up to n recent
// classification results in chronological order.
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	n := 10
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": fmt.Sprintf("invalid n %q", v)})
			return
		}
		n = parsed
	}
	rest.RenderJSON(w, rest.JSON{"entries": s.history.Last(n)})
}

// resultKey makes a cache key for a message text
func resultKey(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}
