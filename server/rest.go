package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/devpulse/pkg/cache"
	"github.com/umputun/devpulse/pkg/domain"
)

// feedResponse is the wire shape of a feed page
type feedResponse struct {
	Items      []domain.FeedRecord `json:"items"`
	Pagination struct {
		Page    int   `json:"page"`
		Limit   int   `json:"limit"`
		HasMore bool  `json:"hasMore"`
		Total   int64 `json:"total"`
	} `json:"pagination"`
}

// trendingResponse is the wire shape of the trending tags aggregation
type trendingResponse struct {
	Tags []domain.TagCount `json:"tags"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// feedHandler serves one page of the merged feed through the cache
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	feedCfg := s.config.GetFeedConfig()

	page := intParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := intParam(r, "limit", feedCfg.DefaultPageSize)
	if limit < 1 {
		limit = feedCfg.DefaultPageSize
	}
	if limit > feedCfg.MaxPageSize {
		limit = feedCfg.MaxPageSize
	}
	typeFilter := r.URL.Query().Get("type")

	key := cache.Key(r.URL.Path, r.URL.Query())
	ttl := s.config.GetCacheConfig().FeedTTL

	body, hit, err := s.cache.ReadThrough(r.Context(), key, ttl, func(ctx context.Context) ([]byte, error) {
		fp, err := s.feed.Assemble(ctx, page, limit, typeFilter)
		if err != nil {
			return nil, err
		}

		resp := feedResponse{Items: fp.Records}
		resp.Pagination.Page = page
		resp.Pagination.Limit = limit
		resp.Pagination.HasMore = fp.HasMore
		resp.Pagination.Total = fp.Total
		return json.Marshal(resp)
	})
	if err != nil {
		// the store being unreachable has no degraded feed to fall back to
		log.Printf("[ERROR] feed assembly failed: %v", err)
		renderError(w, r, fmt.Errorf("feed unavailable"), http.StatusInternalServerError)
		return
	}

	writeCached(w, body, hit)
}

// trendingHandler serves the trending tags aggregation through the cache
func (s *Server) trendingHandler(w http.ResponseWriter, r *http.Request) {
	feedCfg := s.config.GetFeedConfig()
	window := time.Duration(feedCfg.TrendingDays) * 24 * time.Hour

	key := cache.Key(r.URL.Path, r.URL.Query())
	ttl := s.config.GetCacheConfig().TrendingTTL

	body, hit, err := s.cache.ReadThrough(r.Context(), key, ttl, func(ctx context.Context) ([]byte, error) {
		tags, err := s.feed.Trending(ctx, window, feedCfg.TrendingLimit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(trendingResponse{Tags: tags})
	})
	if err != nil {
		log.Printf("[ERROR] trending aggregation failed: %v", err)
		renderError(w, r, fmt.Errorf("trending unavailable"), http.StatusInternalServerError)
		return
	}

	writeCached(w, body, hit)
}

// syncHandler triggers an immediate sync cycle for one source
func (s *Server) syncHandler(src domain.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inserted, err := s.scheduler.SyncNow(r.Context(), src)
		if err != nil {
			log.Printf("[ERROR] manual sync for %s failed: %v", src, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}

		renderJSON(w, r, http.StatusOK, map[string]interface{}{
			"source":   src.String(),
			"inserted": inserted,
		})
	}
}

// sourceItemsHandler lists stored external items of one source, most
// recently ingested first
func (s *Server) sourceItemsHandler(src domain.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := intParam(r, "limit", 50)
		if limit < 1 || limit > 500 {
			limit = 50
		}

		items, err := s.db.ListSourceItems(r.Context(), src, limit)
		if err != nil {
			log.Printf("[ERROR] list %s items failed: %v", src, err)
			renderError(w, r, fmt.Errorf("items unavailable"), http.StatusInternalServerError)
			return
		}

		renderJSON(w, r, http.StatusOK, map[string]interface{}{
			"source": src.String(),
			"count":  len(items),
			"items":  items,
		})
	}
}

// projectRequest is the wire shape of a project create call
type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	AuthorName   string   `json:"authorName"`
	AuthorHandle string   `json:"authorHandle"`
	AvatarURL    string   `json:"avatarUrl"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
}

// createProjectHandler stores a new project and busts cached feed pages
func (s *Server) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		renderError(w, r, fmt.Errorf("title is required"), http.StatusBadRequest)
		return
	}

	project := &domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		AuthorName:   req.AuthorName,
		AuthorHandle: req.AuthorHandle,
		AvatarURL:    req.AvatarURL,
		Stars:        req.Stars,
		Forks:        req.Forks,
		Tags:         req.Tags,
		Featured:     req.Featured,
	}
	if err := s.db.CreateProject(r.Context(), project); err != nil {
		log.Printf("[ERROR] create project failed: %v", err)
		renderError(w, r, fmt.Errorf("create project failed"), http.StatusInternalServerError)
		return
	}

	// the new record is reachable through many feed parameterizations,
	// bust the whole family rather than a single key
	s.cache.Invalidate("feed:")

	renderJSON(w, r, http.StatusCreated, project)
}

// postRequest is the wire shape of a blog post create call
type postRequest struct {
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	AuthorName   string   `json:"authorName"`
	AuthorHandle string   `json:"authorHandle"`
	AvatarURL    string   `json:"avatarUrl"`
	ReadTime     int      `json:"readTime"`
	Tags         []string `json:"tags"`
	Published    bool     `json:"published"`
}

// createPostHandler stores a new blog post and busts cached feed pages
func (s *Server) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		renderError(w, r, fmt.Errorf("title is required"), http.StatusBadRequest)
		return
	}

	post := &domain.BlogPost{
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		AuthorName:   req.AuthorName,
		AuthorHandle: req.AuthorHandle,
		AvatarURL:    req.AvatarURL,
		ReadTime:     req.ReadTime,
		Tags:         req.Tags,
		Published:    req.Published,
	}
	if err := s.db.CreatePost(r.Context(), post); err != nil {
		log.Printf("[ERROR] create post failed: %v", err)
		renderError(w, r, fmt.Errorf("create post failed"), http.StatusInternalServerError)
		return
	}

	s.cache.Invalidate("feed:")

	renderJSON(w, r, http.StatusCreated, post)
}

// writeCached writes a cached or freshly assembled JSON body
func writeCached(w http.ResponseWriter, body []byte, hit bool) {
	w.Header().Set("Content-Type", "application/json")
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	if _, err := w.Write(body); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// intParam reads an integer query parameter with a default
func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
