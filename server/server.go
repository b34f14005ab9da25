// Package server exposes the management-API duplicate search over HTTP, the
// way the hosted function variant of this tool does: one POST endpoint that
// audits a single content type's slug element.
package server

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/kontent-tools/slug-audit/kontent"
)

// DuplicateRequest is the endpoint's JSON request body.
type DuplicateRequest struct {
	EnvironmentID string `json:"environmentId"`
	ContentType   string `json:"contentType"`
	SlugElement   string `json:"slugElement"`
}

type duplicateEntry struct {
	Slug  string   `json:"slug"`
	Items []string `json:"items"`
}

type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
}

type Server struct {
	// ManagementBase overrides the management API base URL; tests point it
	// at a local fixture server.
	ManagementBase string

	apiKey string
	router *gin.Engine
}

// New builds a server using the given management API key.  An empty key is
// allowed at construction time; requests will then fail with a 500, the
// same way the hosted variant behaves when its secret is missing.
func New(apiKey string) *Server {
	s := &Server{apiKey: apiKey}

	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{
			Message:   fmt.Sprintf("Method Not Allowed: %s", c.Request.Method),
			ErrorCode: http.StatusMethodNotAllowed,
		})
	})
	router.POST("/api/find-duplicate-slugs", s.findDuplicateSlugs)

	s.router = router
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	if err := s.router.Run(addr); err != nil {
		return fmt.Errorf("server: listener failed: %w", err)
	}
	return nil
}

func (s *Server) findDuplicateSlugs(c *gin.Context) {
	var req DuplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid JSON body", ErrorCode: http.StatusBadRequest})
		return
	}

	if req.EnvironmentID == "" || req.ContentType == "" || req.SlugElement == "" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message:   "Missing environmentId, contentType, or slugElement",
			ErrorCode: http.StatusBadRequest,
		})
		return
	}

	if s.apiKey == "" {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Message:   "Missing management API key",
			ErrorCode: http.StatusInternalServerError,
		})
		return
	}

	api, err := kontent.NewAPI(req.EnvironmentID, "", s.apiKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error(), ErrorCode: http.StatusBadRequest})
		return
	}

	if s.ManagementBase != "" {
		base, err := url.ParseRequestURI(s.ManagementBase)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error(), ErrorCode: http.StatusInternalServerError})
			return
		}
		api.ManagementURI = base
	}

	variants, err := api.ListVariantsOfType(c.Request.Context(), req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error(), ErrorCode: http.StatusInternalServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"duplicates": groupVariantsBySlug(variants, req.SlugElement)})
}

// groupVariantsBySlug maps the slug element's value to item names and keeps
// any slug with more than one entry.  The variants listing is already
// scoped to one language query, so plain row-count grouping suffices here;
// the delivery path's codename-based classification is not needed.
func groupVariantsBySlug(variants []kontent.LanguageVariant, slugElement string) []duplicateEntry {
	order := []string{}
	names := map[string][]string{}

	for _, variant := range variants {
		value := ""
		for _, el := range variant.Elements {
			if el.Element.Codename != slugElement {
				continue
			}
			if s, ok := el.Value.(string); ok {
				value = s
			}
			break
		}
		if value == "" {
			continue
		}

		name := variant.Item.Name
		if name == "" {
			name = variant.Item.ID
		}
		if name == "" {
			name = "Unknown"
		}

		if _, ok := names[value]; !ok {
			order = append(order, value)
		}
		names[value] = append(names[value], name)
	}

	duplicates := []duplicateEntry{}
	for _, slug := range order {
		if len(names[slug]) > 1 {
			duplicates = append(duplicates, duplicateEntry{Slug: slug, Items: names[slug]})
		}
	}

	return duplicates
}
