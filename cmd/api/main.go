package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apihttp "github.com/ametova/valentine-api/internal/api/http"
	"github.com/ametova/valentine-api/internal/auth/resolver"
	authservice "github.com/ametova/valentine-api/internal/auth/service"
	"github.com/ametova/valentine-api/internal/auth/session"
	"github.com/ametova/valentine-api/internal/common/clock"
	"github.com/ametova/valentine-api/internal/common/config"
	commoncrypto "github.com/ametova/valentine-api/internal/common/crypto"
	"github.com/ametova/valentine-api/internal/common/db"
	commonhttp "github.com/ametova/valentine-api/internal/common/http"
	"github.com/ametova/valentine-api/internal/common/logger"
	srv "github.com/ametova/valentine-api/internal/common/server"
	responserepo "github.com/ametova/valentine-api/internal/response/repository"
	responseservice "github.com/ametova/valentine-api/internal/response/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := db.Connect(log, cfg.MongoURI)

	realClock := clock.NewRealClock()
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	verifier, err := authservice.NewCredentialVerifier(cfg.AuthUsername, cfg.AuthPassword, hasher)
	if err != nil {
		log.Fatalf("failed to initialize credential verifier: %v", err)
	}

	tokens := authservice.NewTokenIssuer(cfg.SessionSecret, realClock)
	auth := authservice.NewAuthService(verifier, tokens, log)
	sessions := session.NewManager(cfg.SessionSecret, idGenerator, realClock, cfg.CookieSameSite, cfg.CookieHTTPSOnly)

	// Cookie session takes precedence over the bearer token.
	resolvers := []resolver.CredentialResolver{
		resolver.NewSessionResolver(sessions),
		resolver.NewBearerResolver(tokens),
	}

	repo := responserepo.NewMongoRepository(client, cfg.MongoDatabase, realClock)
	responses := responseservice.NewService(repo, log)

	handler := apihttp.NewHandler(auth, sessions, resolvers, responses, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	baseHandler := commonhttp.BuildBaseHandler("api", cfg.CORSOrigins, log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			return db.Disconnect(ctx, client, log)
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "api", shutdownHooks)
}
