package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	serviceRepo "fixify/database/repository/service"
	"fixify/models"

	"github.com/gin-gonic/gin"
)

type fakeServiceRepo struct {
	active []models.Service
}

func (f *fakeServiceRepo) Create(*models.Service) error          { return nil }
func (f *fakeServiceRepo) Update(*models.Service) error          { return nil }
func (f *fakeServiceRepo) ListAll() ([]models.Service, error)    { return f.active, nil }
func (f *fakeServiceRepo) ListActive() ([]models.Service, error) { return f.active, nil }
func (f *fakeServiceRepo) SetActive(string, bool) error          { return nil }
func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range f.active {
		if f.active[i].ID == id {
			return &f.active[i], nil
		}
	}
	return nil, serviceRepo.ErrNotFound
}

// Without a cache client the handler must fall straight through to the
// repository.
func TestListServicesWithoutCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(&fakeServiceRepo{active: []models.Service{
		{ID: "svc1", Name: "Plumbing", IsActive: true},
		{ID: "svc2", Name: "Electrical", IsActive: true},
	}}, nil, nil)

	r := gin.New()
	r.GET("/api/catalog/services", h.ListServices)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var got []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Plumbing" {
		t.Errorf("unexpected services payload: %+v", got)
	}
}
