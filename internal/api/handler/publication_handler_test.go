package handler

import (
	"Credo/internal/api/config"
	"Credo/internal/api/dto"
	"Credo/internal/pkg/i18n"
	"Credo/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

type stubPublicationService struct {
	createOut *dto.PublicationDTO
	createErr error
	selectOut *dto.PublicationSelectionDTO
	selectErr error
}

func (s *stubPublicationService) CreatePublication(_ context.Context, _ uint64, _ *dto.PublicationCreateDTO) (*dto.PublicationDTO, error) {
	return s.createOut, s.createErr
}

func (s *stubPublicationService) Selection(_ context.Context, _ *uint64, _, _ int) (*dto.PublicationSelectionDTO, error) {
	return s.selectOut, s.selectErr
}

type stubVoteService struct {
	err error

	voterID       uint64
	publicationID uint64
	believed      *bool
	called        bool
}

func (s *stubVoteService) CastVote(_ context.Context, voterID, publicationID uint64, believed *bool) error {
	s.called = true
	s.voterID = voterID
	s.publicationID = publicationID
	s.believed = believed
	return s.err
}

func setTestConfig(t *testing.T) {
	t.Helper()
	old := config.Cfg
	config.Cfg = &config.Config{
		Pagination: config.PaginationConfig{DefaultPage: 1, DefaultSize: 10, MaxSize: 100},
		I18n:       config.I18nConfig{DefaultLocale: "en"},
	}
	t.Cleanup(func() { config.Cfg = old })
}

func doRequest(t *testing.T, register func(*gin.Engine), method, target, body, locale string) (*httptest.ResponseRecorder, *dto.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if locale != "" {
		req = req.WithContext(i18n.WithLocale(req.Context(), locale))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, &resp
}

func TestCreatePublicationResponse(t *testing.T) {
	setTestConfig(t)
	h := NewPublicationHandler(&stubPublicationService{
		createOut: &dto.PublicationDTO{ID: 1, URL: "https://vk.com/v", Platform: "VK"},
	})

	w, resp := doRequest(t, func(r *gin.Engine) {
		r.POST("/api/publications", h.CreatePublication)
	}, http.MethodPost, "/api/publications", `{"url":"https://vk.com/v"}`, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp.Code != 200 || resp.Detail != "" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestCreatePublicationValidationDetail(t *testing.T) {
	setTestConfig(t)
	h := NewPublicationHandler(&stubPublicationService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{}`},
		{"not a url", `{"url":"not a url"}`},
		{"wrong type", `{"url":123}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, func(r *gin.Engine) {
				r.POST("/api/publications", h.CreatePublication)
			}, http.MethodPost, "/api/publications", tt.body, "")

			// 逻辑失败不升级为传输层错误
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if resp.Code != 400 || resp.Detail != "Invalid request parameters." {
				t.Errorf("unexpected envelope: %+v", resp)
			}
		})
	}
}

func TestCreatePublicationUnsupportedDetail(t *testing.T) {
	setTestConfig(t)
	h := NewPublicationHandler(&stubPublicationService{createErr: service.ErrPlatformNotSupported})

	_, resp := doRequest(t, func(r *gin.Engine) {
		r.POST("/api/publications", h.CreatePublication)
	}, http.MethodPost, "/api/publications", `{"url":"https://example.com/a"}`, "")

	if resp.Code != 400 || resp.Detail != "Platform is not supported." {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestCreatePublicationDetailLocalized(t *testing.T) {
	setTestConfig(t)
	h := NewPublicationHandler(&stubPublicationService{createErr: service.ErrPlatformNotSupported})

	_, resp := doRequest(t, func(r *gin.Engine) {
		r.POST("/api/publications", h.CreatePublication)
	}, http.MethodPost, "/api/publications", `{"url":"https://example.com/a"}`, "zh")

	if resp.Detail != "不支持的内容平台。" {
		t.Errorf("detail = %q, want localized text", resp.Detail)
	}
}

func TestCastVoteResponses(t *testing.T) {
	setTestConfig(t)

	t.Run("success", func(t *testing.T) {
		svc := &stubVoteService{}
		h := NewVoteHandler(svc)
		_, resp := doRequest(t, func(r *gin.Engine) {
			r.POST("/api/publications/:publication_id/vote", func(c *gin.Context) {
				c.Set("user_id", uint64(7))
				h.CastVote(c)
			})
		}, http.MethodPost, "/api/publications/3/vote", `{"believed":true}`, "")

		if resp.Code != 200 || resp.Detail != "" {
			t.Errorf("unexpected envelope: %+v", resp)
		}
		if !svc.called || svc.voterID != 7 || svc.publicationID != 3 {
			t.Errorf("unexpected call: %+v", svc)
		}
		if svc.believed == nil || !*svc.believed {
			t.Error("believed=true must reach the service")
		}
	})

	t.Run("bad publication id", func(t *testing.T) {
		svc := &stubVoteService{}
		h := NewVoteHandler(svc)
		_, resp := doRequest(t, func(r *gin.Engine) {
			r.POST("/api/publications/:publication_id/vote", h.CastVote)
		}, http.MethodPost, "/api/publications/abc/vote", `{"believed":true}`, "")

		if resp.Code != 400 {
			t.Errorf("code = %d, want 400", resp.Code)
		}
		if svc.called {
			t.Error("service must not be called on a bad id")
		}
	})

	t.Run("publication missing", func(t *testing.T) {
		h := NewVoteHandler(&stubVoteService{err: service.ErrPublicationNotFound})
		w, resp := doRequest(t, func(r *gin.Engine) {
			r.POST("/api/publications/:publication_id/vote", h.CastVote)
		}, http.MethodPost, "/api/publications/99/vote", `{"believed":false}`, "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if resp.Code != 404 || resp.Detail != "Publication not found." {
			t.Errorf("unexpected envelope: %+v", resp)
		}
	})

	t.Run("explicit null stance", func(t *testing.T) {
		svc := &stubVoteService{}
		h := NewVoteHandler(svc)
		_, resp := doRequest(t, func(r *gin.Engine) {
			r.POST("/api/publications/:publication_id/vote", h.CastVote)
		}, http.MethodPost, "/api/publications/3/vote", `{"believed":null}`, "")

		if resp.Code != 200 {
			t.Errorf("code = %d, want 200", resp.Code)
		}
		if !svc.called || svc.believed != nil {
			t.Error("null stance must reach the service as nil")
		}
	})
}
