// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pitmydoro/backend/config"
	"github.com/pitmydoro/backend/internal/infra/dependency"
	"github.com/pitmydoro/backend/internal/integration/adapters"
	"github.com/pitmydoro/backend/internal/integration/persistence"
	"github.com/pitmydoro/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// environment is the infrastructure shared by every scenario.
type environment struct {
	db       *mock.Db
	redis    *redis.Client
	resend   *mock.ApiMock
	injector *dependency.Injector
	server   *httptest.Server
}

var (
	env     *environment
	envOnce sync.Once
)

func setupEnvironment() *environment {
	envOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		resend := mock.NewApiServer()
		resend.Start()

		_, redisClient := mock.NewRedis()
		db := mock.NewDb("pitmydoro_integration", persistence.Models()...)

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Email.ResendAPIKey = "re_test_key"
		cfg.Email.ResendBaseURL = resend.GetUrl()
		cfg.Email.AppBaseURL = "http://localhost:3000"
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.MaxAttempts = 5
		cfg.RateLimit.Window = time.Minute
		cfg.RateLimit.StrengthMaxAttempts = 600

		injector, err := dependency.NewInjector(cfg, db.DbConn, dependency.Options{
			Redis:           redisClient,
			PasswordService: adapters.NewPasswordServiceWithCost(4),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to wire dependencies: %v", err))
		}

		env = &environment{
			db:       db,
			redis:    redisClient,
			resend:   resend,
			injector: injector,
			server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
		}
	})
	return env
}

// testContext holds the state of one scenario.
type testContext struct {
	env          *environment
	client       *http.Client
	headers      map[string]string
	response     *response
	accessToken  string
	refreshToken string
	resetToken   string
	users        map[string]session
}

// session is a logged-in user's token pair.
type session struct {
	accessToken  string
	refreshToken string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

// InitializeTestSuite starts the shared server before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		setupEnvironment()
	})

	ctx.AfterSuite(func() {
		if env == nil {
			return
		}
		env.server.Close()
		env.resend.Close()
	})
}

// InitializeScenario resets shared state and registers every step.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		env:    setupEnvironment(),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	registerAccountSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerAssertionSteps(ctx, test)
	registerEmailSteps(ctx, test)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.users = make(map[string]session)

	t.env.resend.ClearResponses()
	if err := mock.ClearRedis(t.env.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return t.env.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.env.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
