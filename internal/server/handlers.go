package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobsearch/internal/companies"
	"github.com/jonathan/jobsearch/internal/pipeline"
	"github.com/jonathan/jobsearch/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SearchRequest represents the request body for /api/search
type SearchRequest struct {
	Company string `json:"company" validate:"required,min=1,max=200"`
	Mode    string `json:"mode,omitempty" validate:"omitempty,oneof=auto quick deep"`
}

// ProviderInfo describes one configured provider for /api/providers
type ProviderInfo struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
}

// CareerPagesResponse represents the response for career page lookups
type CareerPagesResponse struct {
	Company string            `json:"company"`
	Pages   []types.JobResult `json:"pages"`
}

// handleSearch runs a job search for a company
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0]
			verr := &ErrValidation{Field: field.Field(), Message: "failed " + field.Tag() + " validation"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	mode := pipeline.Mode(req.Mode)
	if mode == "" {
		mode = pipeline.ModeAuto
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.searchTimeout)
	defer cancel()

	result, err := s.searcher.SearchMode(ctx, req.Company, mode)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			terr := &ErrSearchTimeout{}
			s.errorResponse(w, HTTPStatus(terr), terr.Error())
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSuggestCompanies serves directory autocomplete
func (s *Server) handleSuggestCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 8
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			verr := &ErrValidation{Field: "limit", Message: "must be an integer between 1 and 50"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		limit = parsed
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"suggestions": companies.Suggest(query, limit),
	})
}

// handleCareerPages serves career page pointers for a company
func (s *Server) handleCareerPages(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		cerr := &ErrCompanyRequired{}
		s.errorResponse(w, HTTPStatus(cerr), cerr.Error())
		return
	}

	pages, err := s.searcher.SuggestCareerPages(r.Context(), name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CareerPagesResponse{Company: name, Pages: pages})
}

// handleListProviders lists the configured provider stages
func (s *Server) handleListProviders(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"providers": s.providerList(),
	})
}

// providerList flattens the registry into stage-labelled provider infos.
// When the server was built without a concrete pipeline registry (tests),
// the list is empty.
func (s *Server) providerList() []ProviderInfo {
	searcher, ok := s.searcher.(*pipeline.Searcher)
	if !ok || searcher.Registry == nil {
		return []ProviderInfo{}
	}

	var infos []ProviderInfo
	r := searcher.Registry
	if r.Primary != nil {
		infos = append(infos, ProviderInfo{Name: r.Primary.Name(), Stage: "primary"})
	}
	for _, p := range r.FreeBundle {
		infos = append(infos, ProviderInfo{Name: p.Name(), Stage: "free-bundle"})
	}
	for _, p := range r.Credentialed {
		infos = append(infos, ProviderInfo{Name: p.Name(), Stage: "credentialed"})
	}
	for _, p := range r.LastResort {
		infos = append(infos, ProviderInfo{Name: p.Name(), Stage: "last-resort"})
	}
	if infos == nil {
		return []ProviderInfo{}
	}
	return infos
}
