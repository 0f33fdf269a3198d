package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"elevatecart/internal/domain"
)

type pageRepository struct {
	pages map[string]*domain.PageConfig
}

// pageFile is the on-disk shape: page id -> configuration. Group selectors use
// the CMS editor form, e.g. {"match-method": "code", "course-stream-code": "FALL25"}.
type pageFile map[string]struct {
	EndpointURL      string                 `json:"endpoint_url"`
	Groups           []domain.GroupSelector `json:"groups"`
	NoCoursesMessage string                 `json:"no_courses_message"`
}

// LoadPageRepository reads page configurations from a JSON file. Pages without
// an endpoint use defaultEndpoint.
func LoadPageRepository(path, defaultEndpoint string) (domain.PageRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages file: %w", err)
	}
	return ParsePageRepository(data, defaultEndpoint)
}

// ParsePageRepository builds a page repository from JSON.
func ParsePageRepository(data []byte, defaultEndpoint string) (domain.PageRepository, error) {
	var pf pageFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("decode pages file: %w", err)
	}
	pages := make(map[string]*domain.PageConfig, len(pf))
	for id, p := range pf {
		endpoint := strings.TrimSpace(p.EndpointURL)
		if endpoint == "" {
			endpoint = defaultEndpoint
		}
		if endpoint == "" {
			return nil, fmt.Errorf("page %q: no endpoint_url and no default catalog URL", id)
		}
		msg := p.NoCoursesMessage
		if msg == "" {
			msg = domain.DefaultNoCoursesMessage
		}
		pages[id] = &domain.PageConfig{
			ID:               id,
			EndpointURL:      endpoint,
			Groups:           p.Groups,
			NoCoursesMessage: msg,
		}
	}
	return &pageRepository{pages: pages}, nil
}

func (r *pageRepository) GetByID(ctx context.Context, id string) (*domain.PageConfig, error) {
	p, ok := r.pages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	cp.Groups = append([]domain.GroupSelector(nil), p.Groups...)
	return &cp, nil
}
