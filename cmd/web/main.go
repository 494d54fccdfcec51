package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"helixcraftworks.com/helix-web/internal/config"
	"helixcraftworks.com/helix-web/internal/content"
	"helixcraftworks.com/helix-web/internal/forms"
	"helixcraftworks.com/helix-web/internal/handlers"
	"helixcraftworks.com/helix-web/internal/logging"
	mw "helixcraftworks.com/helix-web/internal/middleware"
	"helixcraftworks.com/helix-web/internal/routes"
	"helixcraftworks.com/helix-web/internal/storefront"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	contentDir   = "content/pages"
	// devMode reparses templates on every request; set from HELIX_WEB_DEV or DEV
	devMode   bool
	tmplCache *template.Template
)

// app holds the immutable state shared by every request.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	table   *routes.Table
	site    handlers.Site
	backend *forms.Backend
}

func main() {
	var (
		addr     string
		tmplPath string
		pubPath  string
		pagePath string
		cfgFile  string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :$HELIX_WEB_PORT, :$PORT, or :8080)")
	flag.StringVar(&tmplPath, "templates", "", "templates directory")
	flag.StringVar(&pubPath, "public", "", "public assets directory")
	flag.StringVar(&pagePath, "content", "", "standalone page markdown directory")
	flag.StringVar(&cfgFile, "config", "", "config file (default ./helix-web.yaml when present)")
	flag.Parse()

	cfg, err := config.Load(config.Options{ConfigFile: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = applyFlags(cfg, addr, tmplPath, pubPath, pagePath)

	logger := logging.Must(cfg.Dev)
	defer func() { _ = logger.Sync() }()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Fatal("startup", zap.Error(err))
	}

	var handler http.Handler = a.router()
	if cfg.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("web listening",
		zap.String("addr", cfg.Addr),
		zap.Bool("dev", devMode),
		zap.Bool("h2c", cfg.H2C),
		zap.Int("routes", a.table.Len()),
		zap.Bool("form_backend_fake", a.backend.Fake()),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
}

func applyFlags(cfg config.Config, addr, tmplPath, pubPath, pagePath string) config.Config {
	if addr != "" {
		cfg.Addr = addr
	}
	if tmplPath != "" {
		cfg.TemplatesDir = tmplPath
	}
	if pubPath != "" {
		cfg.PublicDir = pubPath
	}
	if pagePath != "" {
		cfg.ContentDir = pagePath
	}
	return cfg
}

// newApp loads content, builds the route table, and parses templates.
func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	contentDir = cfg.ContentDir
	devMode = cfg.Dev

	standalone, err := content.LoadStandalone(contentDir)
	if err != nil {
		return nil, err
	}
	table, err := routes.Site(standalone)
	if err != nil {
		return nil, err
	}

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
		tmplCache = tc
	}

	return &app{
		cfg:   cfg,
		log:   logger,
		table: table,
		site: handlers.Site{
			BaseURL:      cfg.BaseURL,
			Analytics:    handlers.AnalyticsFrom(cfg.Analytics),
			Store:        storefront.New(cfg.EcwidStoreID),
			AssetVersion: mw.AssetVersion(filepath.Join(publicDir, "assets"), "/css/site.css"),
		},
		backend: forms.NewBackend(cfg.FormEndpoint, cfg.FormTimeout, logger.Named("forms")),
	}, nil
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Trace)
	r.Use(mw.Logger(a.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestSize(a.cfg.MaxUpload))
	r.Use(mw.CSRF(a.cfg.Secure()))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"))))

	r.Get("/snapshots", a.SnapshotHandler)
	r.Get("/forms/{name}", a.FormPreviewHandler)
	r.Post("/", a.SubmitHandler)
	r.Get("/", a.PageHandler)
	r.Get("/*", a.PageHandler)
	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":  time.Now,
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func templates() (*template.Template, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, errors.New("template not initialized")
	}
	return tmplCache, nil
}

// render executes the base layout. In dev mode, templates are reparsed on each request.
func render(w http.ResponseWriter, r *http.Request, data any) {
	renderTemplate(w, r, "base", http.StatusOK, data)
}

// renderFragment executes a named partial for htmx swaps.
func renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderTemplate(w, r, name, http.StatusOK, data)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	t, err := templates()
	if err != nil {
		mw.Log(r.Context()).Error("template parse", zap.Error(err))
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	var buf strings.Builder
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		mw.Log(r.Context()).Error("template exec", zap.String("template", name), zap.Error(err))
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}
