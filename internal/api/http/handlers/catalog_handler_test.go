package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/http/handlers"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/service"
)

type staticCatalogStore struct {
	textbooks []domain.Textbook
	topics    []domain.Topic
}

func (s staticCatalogStore) ListTextbooks(context.Context) ([]domain.Textbook, error) {
	return s.textbooks, nil
}

func (s staticCatalogStore) ListTopics(context.Context) ([]domain.Topic, error) {
	return s.topics, nil
}

func newCatalogTestApp(store staticCatalogStore) *fiber.App {
	handler := handlers.NewCatalogHandler(service.NewCatalogService(store))

	app := fiber.New()
	app.Get("/api/textbooks", handler.ListTextbooks)
	app.Get("/api/topics", handler.ListTopics)
	return app
}

func TestListTextbooks(t *testing.T) {
	app := newCatalogTestApp(staticCatalogStore{
		textbooks: []domain.Textbook{
			{ID: "tb-1", Title: "Compilers", Author: "Aho"},
			{ID: "tb-2", Title: "SICP", Author: "Abelson"},
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/textbooks", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Textbooks []struct {
				ID     string `json:"id"`
				Title  string `json:"title"`
				Author string `json:"author"`
			} `json:"textbooks"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data.Textbooks) != 2 {
		t.Fatalf("got %d textbooks, want 2", len(payload.Data.Textbooks))
	}
	if payload.Data.Textbooks[0].Title != "Compilers" || payload.Data.Textbooks[0].Author != "Aho" {
		t.Errorf("unexpected first textbook: %+v", payload.Data.Textbooks[0])
	}
}

func TestListTopics(t *testing.T) {
	app := newCatalogTestApp(staticCatalogStore{
		topics: []domain.Topic{{ID: "tp-1", Name: "Databases"}},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Topics []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"topics"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data.Topics) != 1 || payload.Data.Topics[0].Name != "Databases" {
		t.Errorf("unexpected topics: %+v", payload.Data.Topics)
	}
}

func TestListTextbooksEmptyIsAnArray(t *testing.T) {
	app := newCatalogTestApp(staticCatalogStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/textbooks", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(payload.Data["textbooks"]) != "[]" {
		t.Errorf("empty list serialized as %s, want []", payload.Data["textbooks"])
	}
}
