package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/project"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/github"
)

// Syncer rebuilds the projects table from the current repository set. The
// outcome is idempotent: identical repository input yields an identical row
// set, although every run performs a full delete and insert.
type Syncer interface {
	Sync(ctx context.Context) ([]project.Project, error)
}

type syncer struct {
	logger      *logrus.Logger
	github      github.Client
	repo        project.Repository
	mapper      *Mapper
	excludeName string
}

func NewSyncer(
	logger *logrus.Logger,
	githubClient github.Client,
	repo project.Repository,
	mapper *Mapper,
	excludeName string,
) Syncer {
	return &syncer{
		logger:      logger,
		github:      githubClient,
		repo:        repo,
		mapper:      mapper,
		excludeName: excludeName,
	}
}

func (s *syncer) Sync(ctx context.Context) ([]project.Project, error) {
	repos, err := s.github.ListUserRepos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}
	s.logger.WithField("count", len(repos)).Info("fetched github repositories")

	projects := make([]project.Project, 0, len(repos))
	for _, repo := range repos {
		// The portfolio's own source repository is not a portfolio entry.
		if s.excludeName != "" && strings.Contains(repo.Name, s.excludeName) {
			continue
		}
		projects = append(projects, s.mapper.Map(repo))
	}

	if err := s.repo.ReplaceAll(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to replace projects: %w", err)
	}

	s.logger.WithField("count", len(projects)).Info("synced projects")
	return projects, nil
}
