package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BOKA26/lovotech-nexus/pkg/infra/github"
)

const reposPayload = `[
	{
		"id": 1,
		"name": "dadi-dignity-compass",
		"description": "Plateforme ONG",
		"html_url": "https://github.com/boka26/dadi-dignity-compass",
		"topics": ["ngo", "react"],
		"created_at": "2024-03-01T10:00:00Z",
		"language": "TypeScript",
		"homepage": ""
	},
	{
		"id": 2,
		"name": "focal-convert",
		"description": null,
		"html_url": "https://github.com/boka26/focal-convert",
		"topics": [],
		"created_at": "2024-05-12T08:30:00Z",
		"language": null,
		"homepage": "https://shop.offotechword.com"
	}
]`

func TestClient_ListUserRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "owner,collaborator,organization_member", r.URL.Query().Get("affiliation"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposPayload))
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "test-token")
	repos, err := client.ListUserRepos(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "dadi-dignity-compass", repos[0].Name)
	assert.Equal(t, []string{"ngo", "react"}, repos[0].Topics)
	assert.Equal(t, "TypeScript", repos[0].Language)
	assert.Equal(t, "https://shop.offotechword.com", repos[1].Homepage)
	assert.Empty(t, repos[1].Description)
}

func TestClient_ListUserRepos_MissingToken(t *testing.T) {
	client := github.NewClient("", "")
	_, err := client.ListUserRepos(context.Background())
	assert.ErrorIs(t, err, github.ErrTokenRequired)
}

func TestClient_ListUserRepos_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "test-token")
	_, err := client.ListUserRepos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "rate limited")
}
