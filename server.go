package main

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ReikiC/homepage/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const externalLinkAttrs = `target="_blank" rel="noopener noreferrer"`

type NavItem struct {
	Label  string
	URL    string
	Active bool
}

type pageData struct {
	Site *content.Site
	Page content.Page
	Nav  []NavItem
	Year int
}

type Server struct {
	site       *content.Site
	logger     *zap.Logger
	metrics    *Metrics
	visitors   *VisitorStore
	adminToken string
	engine     *gin.Engine
}

// NewServer builds the gin engine. visitors may be nil when tracking is disabled.
func NewServer(site *content.Site, visitors *VisitorStore, metrics *Metrics, adminToken string, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"linkAttrs":    linkAttrs,
		"githubHandle": githubHandle,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		site:       site,
		logger:     logger,
		metrics:    metrics,
		visitors:   visitors,
		adminToken: adminToken,
		engine:     gin.New(),
	}

	r := s.engine
	r.Use(requestLogger(logger), gin.Recovery())
	if visitors != nil {
		r.Use(visitorTracking(visitors))
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.homeView)
	r.GET("/links", s.linksView)
	r.GET("/api/site", s.siteJSON)
	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.setupAdminRoutes()

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) homeView(c *gin.Context) {
	s.render(c, "home", "home.html", s.site.Home)
}

func (s *Server) linksView(c *gin.Context) {
	s.render(c, "links", "links.html", s.site.Links)
}

func (s *Server) siteJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.site)
}

func (s *Server) render(c *gin.Context, page, name string, meta content.Page) {
	c.HTML(http.StatusOK, name, pageData{
		Site: s.site,
		Page: meta,
		Nav:  s.nav(c.Request.URL.Path),
		Year: time.Now().Year(),
	})

	status := c.Writer.Status()
	if len(c.Errors) > 0 {
		s.logger.Error("Failed to render page", zap.String("page", page), zap.Error(c.Errors.Last()))
		status = http.StatusInternalServerError
	}
	s.metrics.PageRenders.WithLabelValues(page, strconv.Itoa(status)).Inc()
}

func (s *Server) nav(current string) []NavItem {
	items := []NavItem{
		{Label: "Home", URL: "/"},
		{Label: "Knowledge Wiki", URL: s.site.DocsURL},
		{Label: "Blog", URL: s.site.BlogURL},
		{Label: "Links", URL: "/links"},
	}
	for i := range items {
		items[i].Active = items[i].URL == current
	}
	return items
}

// linkAttrs opens off-site destinations in a new browsing context without
// exposing window.opener or the referrer.
func linkAttrs(target string) template.HTMLAttr {
	if content.IsExternal(target) {
		return externalLinkAttrs
	}
	return ""
}

func githubHandle(profileURL string) string {
	trimmed := strings.TrimRight(profileURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
