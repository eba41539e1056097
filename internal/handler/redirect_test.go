package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickgate/internal/classifier"
	"clickgate/internal/config"
	"clickgate/internal/mocks"
	"clickgate/internal/model"
	"clickgate/internal/service"
)

const uaIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestClassifier() *classifier.Classifier {
	return classifier.New(&config.AnalyticsConfig{FingerprintSalt: "test-salt"})
}

func newTestRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/:shortCode", h.Redirect)
	router.POST("/:shortCode", h.Redirect)
	return router
}

func successResolution(dest string) *model.Resolution {
	return &model.Resolution{Verdict: model.VerdictSuccess, Destination: dest}
}

func decodeResolution(t *testing.T, body []byte) (Response, model.Resolution) {
	t.Helper()
	var resp struct {
		Response
		Data model.Resolution `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Response, resp.Data
}

func waitForClick(t *testing.T, ch <-chan *model.ClickMessage) *model.ClickMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("click event was not published")
		return nil
	}
}

func TestNewRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRedirectHandler(mocks.NewMockResolverInterface(ctrl), mocks.NewMockRecorderInterface(ctrl), newTestClassifier(), nil)

	assert.NotNil(t, handler)
}

func TestStatusForVerdict(t *testing.T) {
	tests := []struct {
		verdict model.Verdict
		status  int
	}{
		{model.VerdictSuccess, http.StatusFound},
		{model.VerdictInvalid, http.StatusNotFound},
		{model.VerdictInactive, http.StatusForbidden},
		{model.VerdictShowCounter, http.StatusOK},
		{model.VerdictExpired, http.StatusGone},
		{model.VerdictMaxTransferReached, http.StatusGone},
		{model.VerdictShowPasswordPrompt, http.StatusUnauthorized},
		{model.VerdictPasswordIncorrect, http.StatusUnauthorized},
		{model.Verdict("UNKNOWN"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.verdict), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForVerdict(tt.verdict))
		})
	}
}

func TestRedirectHandler_Redirect(t *testing.T) {
	t.Run("successful redirect records and publishes the click", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), mockProducer)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), &model.ResolveRequest{ShortCode: "ABCD"}).
			Return(successResolution("https://example.com/landing"), nil)
		mockRecorder.EXPECT().
			Record(gomock.Any(), "ABCD", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, click model.ClickContext) error {
				assert.Equal(t, model.DeviceMobile, click.DeviceType)
				assert.Equal(t, model.BrowserSafari, click.BrowserName)
				assert.Equal(t, "Germany", click.Country)
				assert.NotEmpty(t, click.Fingerprint)
				assert.False(t, click.ClickedAt.IsZero())
				return nil
			})

		published := make(chan *model.ClickMessage, 1)
		mockProducer.EXPECT().
			SendClick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, msg *model.ClickMessage) error {
				published <- msg
				return nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD", nil)
		req.Header.Set("User-Agent", uaIPhone)
		req.Header.Set("CF-IPCountry", "DE")
		req.Header.Set("Referer", "https://news.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/landing", w.Header().Get("Location"))

		msg := waitForClick(t, published)
		assert.Equal(t, "ABCD", msg.ShortCode)
		assert.NotEmpty(t, msg.EventID)
		assert.Equal(t, "https://news.example.com", msg.Referer)
		assert.Equal(t, "Germany", msg.Country)
		assert.False(t, msg.Retry)
	})

	t.Run("non-success verdicts are served with their status", func(t *testing.T) {
		countdownStart := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)
		tests := []struct {
			name   string
			res    *model.Resolution
			status int
		}{
			{"invalid", model.NewResolution(model.VerdictInvalid), http.StatusNotFound},
			{"inactive", model.NewResolution(model.VerdictInactive), http.StatusForbidden},
			{"expired", model.NewResolution(model.VerdictExpired), http.StatusGone},
			{"quota exhausted", model.NewResolution(model.VerdictMaxTransferReached), http.StatusGone},
			{"password prompt", model.NewResolution(model.VerdictShowPasswordPrompt), http.StatusUnauthorized},
			{"password incorrect", model.NewResolution(model.VerdictPasswordIncorrect), http.StatusUnauthorized},
			{"countdown", &model.Resolution{
				Verdict:   model.VerdictShowCounter,
				Countdown: &model.Countdown{StartAt: countdownStart, Message: "soon"},
			}, http.StatusOK},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				mockResolver := mocks.NewMockResolverInterface(ctrl)
				mockRecorder := mocks.NewMockRecorderInterface(ctrl)
				mockProducer := mocks.NewMockProducerInterface(ctrl)

				handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), mockProducer)
				router := newTestRedirectRouter(handler)

				mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(tt.res, nil)

				w := httptest.NewRecorder()
				req, _ := http.NewRequest("GET", "/ABCD", nil)
				router.ServeHTTP(w, req)

				assert.Equal(t, tt.status, w.Code)
				resp, res := decodeResolution(t, w.Body.Bytes())
				assert.Equal(t, tt.status, resp.Code)
				assert.Equal(t, string(tt.res.Verdict), resp.Message)
				assert.Equal(t, tt.res.Verdict, res.Verdict)
				assert.Empty(t, res.Destination)
				if tt.res.Countdown != nil {
					require.NotNil(t, res.Countdown)
					assert.True(t, res.Countdown.StartAt.Equal(countdownStart))
					assert.Equal(t, "soon", res.Countdown.Message)
				}
			})
		}
	})

	t.Run("password from form body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), &model.ResolveRequest{ShortCode: "ABCD", Password: "s3cret"}).
			Return(successResolution("https://example.com"), nil)
		mockRecorder.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(nil)

		form := url.Values{"password": {"s3cret"}}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/ABCD", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("password from JSON body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), &model.ResolveRequest{ShortCode: "ABCD", Password: "wrong"}).
			Return(model.NewResolution(model.VerdictPasswordIncorrect), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/ABCD", strings.NewReader(`{"password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET ignores password query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), &model.ResolveRequest{ShortCode: "ABCD"}).
			Return(model.NewResolution(model.VerdictShowPasswordPrompt), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD?password=s3cret", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed short code never reaches the resolver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		for _, code := range []string{"abc", "bad.code", strings.Repeat("a", 33)} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/"+code, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code, code)
			_, res := decodeResolution(t, w.Body.Bytes())
			assert.Equal(t, model.VerdictInvalid, res.Verdict)
		}
	})

	t.Run("resolver fault returns 500 with INVALID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return(model.NewResolution(model.VerdictInvalid), service.ErrAnalyticsMissing)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp, res := decodeResolution(t, w.Body.Bytes())
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, model.VerdictInvalid, res.Verdict)
	})

	t.Run("failed recording is published for replay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), mockProducer)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(successResolution("https://example.com"), nil)
		mockRecorder.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(errors.New("db down"))

		published := make(chan *model.ClickMessage, 1)
		mockProducer.EXPECT().
			SendClick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, msg *model.ClickMessage) error {
				published <- msg
				return nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		msg := waitForClick(t, published)
		assert.True(t, msg.Retry)
		assert.Equal(t, "ABCD", msg.ShortCode)
	})

	t.Run("missing analytics is not replayed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), mockProducer)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(successResolution("https://example.com"), nil)
		mockRecorder.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(service.ErrAnalyticsMissing)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("redirect without MQ producer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := mocks.NewMockResolverInterface(ctrl)
		mockRecorder := mocks.NewMockRecorderInterface(ctrl)

		handler := NewRedirectHandler(mockResolver, mockRecorder, newTestClassifier(), nil)
		router := newTestRedirectRouter(handler)

		mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(successResolution("https://example.com"), nil)
		mockRecorder.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})
}
