package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fincontrol/backend/test/mock"
)

func newLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doLogin(engine *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimiter(t *testing.T) {
	t.Run("blocks after the attempt limit", func(t *testing.T) {
		client, _ := mock.NewTestRedis(t)
		engine := newLimitedRouter(NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			if recorder := doLogin(engine); recorder.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i+1, recorder.Code)
			}
		}

		recorder := doLogin(engine)
		if recorder.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 after the limit, got %d", recorder.Code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		client, miniRedis := mock.NewTestRedis(t)
		engine := newLimitedRouter(NewRateLimiterWithConfig(client, 1, time.Minute))

		if recorder := doLogin(engine); recorder.Code != http.StatusOK {
			t.Fatalf("expected first attempt to pass, got %d", recorder.Code)
		}
		if recorder := doLogin(engine); recorder.Code != http.StatusTooManyRequests {
			t.Fatalf("expected second attempt to be blocked, got %d", recorder.Code)
		}

		miniRedis.FastForward(2 * time.Minute)

		if recorder := doLogin(engine); recorder.Code != http.StatusOK {
			t.Errorf("expected attempt after window expiry to pass, got %d", recorder.Code)
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		client, _ := mock.NewTestRedis(t)
		engine := newLimitedRouter(NewRateLimiterWithConfig(client, 1, time.Minute))

		if recorder := doLogin(engine); recorder.Code != http.StatusOK {
			t.Fatalf("expected first attempt to pass, got %d", recorder.Code)
		}
		if recorder := doLogin(engine); recorder.Code != http.StatusTooManyRequests {
			t.Fatalf("expected second attempt to be blocked, got %d", recorder.Code)
		}

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		engine.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Errorf("expected a different client to pass, got %d", recorder.Code)
		}
	})

	t.Run("nil client fails open", func(t *testing.T) {
		engine := newLimitedRouter(NewRateLimiterWithConfig(nil, 1, time.Minute))

		for i := 0; i < 5; i++ {
			if recorder := doLogin(engine); recorder.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected fail-open 200, got %d", i+1, recorder.Code)
			}
		}
	})

	t.Run("unreachable redis fails open", func(t *testing.T) {
		client, miniRedis := mock.NewTestRedis(t)
		engine := newLimitedRouter(NewRateLimiterWithConfig(client, 1, time.Minute))
		miniRedis.Close()

		if recorder := doLogin(engine); recorder.Code != http.StatusOK {
			t.Errorf("expected fail-open 200 with redis down, got %d", recorder.Code)
		}
	})
}
