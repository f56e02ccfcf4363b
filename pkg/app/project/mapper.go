package project

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/project"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/database/types"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/github"
)

const (
	categoryWeb    = "Web"
	categoryGitHub = "GitHub"

	pagesSuffix = ".github.io"

	// fallbackImage is the stock photo used when no override applies.
	fallbackImage = "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=600&fit=crop"
)

// Override pins a repository name to deployed-site metadata which takes
// priority over anything derivable from the repository itself.
type Override struct {
	URL      string `mapstructure:"url"`
	Image    string `mapstructure:"image"`
	Category string `mapstructure:"category"`
}

// DefaultOverrides returns the built-in table of deployed projects.
func DefaultOverrides() map[string]Override {
	return map[string]Override{
		"dadi-dignity-compass": {
			URL:      "https://ong-dadi.offotechword.com",
			Image:    "https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=800&h=600&fit=crop",
			Category: "ONG & Social",
		},
		"flock-folio-app": {
			URL:      "https://flock-folio-app.lovable.app",
			Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
			Category: "Portfolio",
		},
		"chambre-haute-connect": {
			URL:      "https://chambre-haute.lovable.app",
			Image:    "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=800&h=600&fit=crop",
			Category: "Business",
		},
		"focal-convert": {
			URL:      "https://shop.offotechword.com",
			Image:    "https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=800&h=600&fit=crop",
			Category: "E-commerce",
		},
		"mevos": {
			URL:      "https://offotechword.lovable.app",
			Image:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&h=600&fit=crop",
			Category: "Tech & Innovation",
		},
		"ai-for-all-biz": {
			URL:      "https://offotechword.lovable.app",
			Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
			Category: "Intelligence Artificielle",
		},
	}
}

// OverridesFromSettings decodes a raw, config-sourced override table. An
// empty table falls back to the defaults.
func OverridesFromSettings(settings map[string]interface{}) (map[string]Override, error) {
	if len(settings) == 0 {
		return DefaultOverrides(), nil
	}

	overrides := make(map[string]Override, len(settings))
	for name, raw := range settings {
		var o Override
		if err := mapstructure.Decode(raw, &o); err != nil {
			return nil, fmt.Errorf("invalid override for %s: %w", name, err)
		}
		overrides[name] = o
	}
	return overrides, nil
}

type MapperOpts struct {
	UUIDProvider func() uuid.UUID
}

// Mapper turns fetched repositories into portfolio records following the
// fixed priority rules for link, image and category resolution.
type Mapper struct {
	overrides    map[string]Override
	pagesOwner   string
	uuidProvider func() uuid.UUID
}

func NewMapper(overrides map[string]Override, pagesOwner string, opts *MapperOpts) *Mapper {
	uuidProvider := uuid.New
	if opts != nil && opts.UUIDProvider != nil {
		uuidProvider = opts.UUIDProvider
	}
	if overrides == nil {
		overrides = DefaultOverrides()
	}
	// Override keys arrive lowercased from the config loader, so the table
	// is matched case-insensitively on repository name.
	normalized := make(map[string]Override, len(overrides))
	for name, o := range overrides {
		normalized[strings.ToLower(name)] = o
	}
	return &Mapper{
		overrides:    normalized,
		pagesOwner:   pagesOwner,
		uuidProvider: uuidProvider,
	}
}

func (m *Mapper) Map(repo github.Repo) project.Project {
	link, image, category := m.resolveMetadata(repo)

	description := repo.Description
	if description == "" {
		description = "Projet " + category
	}

	return project.Project{
		ID:          m.uuidProvider(),
		Title:       titleFromName(repo.Name),
		Description: description,
		Image:       image,
		Tags:        buildTags(category, repo),
		Link:        link,
		CreatedAt:   repo.CreatedAt,
	}
}

// resolveMetadata applies the priority order: manual override, configured
// homepage, GitHub Pages naming convention, repository URL.
func (m *Mapper) resolveMetadata(repo github.Repo) (link, image, category string) {
	if override, ok := m.overrides[strings.ToLower(repo.Name)]; ok {
		return override.URL, override.Image, override.Category
	}

	if strings.TrimSpace(repo.Homepage) != "" {
		return repo.Homepage, fallbackImage, categoryWeb
	}

	if strings.HasSuffix(repo.Name, pagesSuffix) {
		pagesPath := strings.TrimSuffix(repo.Name, pagesSuffix)
		if pagesPath == "" {
			pagesPath = m.pagesOwner
		}
		link = fmt.Sprintf("https://%s%s/%s/", m.pagesOwner, pagesSuffix, pagesPath)
		return link, fallbackImage, categoryWeb
	}

	return repo.HTMLURL, fallbackImage, categoryGitHub
}

// buildTags assembles category, up to two topics, then the primary
// language, truncated to the tag ceiling.
func buildTags(category string, repo github.Repo) types.StringArray {
	tags := make([]string, 0, project.MaxTags)
	tags = append(tags, category)

	topics := repo.Topics
	if len(topics) > 2 {
		topics = topics[:2]
	}
	tags = append(tags, topics...)

	if repo.Language != "" {
		tags = append(tags, repo.Language)
	}

	if len(tags) > project.MaxTags {
		tags = tags[:project.MaxTags]
	}
	return tags
}

// titleFromName splits a repository name on hyphens, capitalizes each token
// and joins them with spaces.
func titleFromName(name string) string {
	tokens := strings.Split(name, "-")
	for i, token := range tokens {
		tokens[i] = capitalize(token)
	}
	return strings.Join(tokens, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
