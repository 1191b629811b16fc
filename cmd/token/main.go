// Command token mints a bearer token for an existing user, for local use
// against the API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	dbadapter "github.com/TukaHeba/Task-System/internal/adapter/db"
	"github.com/TukaHeba/Task-System/internal/config"
	"github.com/TukaHeba/Task-System/pkg/token"
)

func main() {
	userID := pflag.Uint64P("user-id", "u", 0, "id of the user the token identifies")
	ttl := pflag.Duration("ttl", 0, "token lifetime, defaults to JWT_TTL")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if *userID == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	if *ttl > 0 {
		cfg.JWTTTL = *ttl
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := dbadapter.NewUserRepository(db).FindUserByID(ctx, *userID)
	if err != nil {
		logger.Fatal("failed to load user", zap.Uint64("user_id", *userID), zap.Error(err))
	}

	signed, err := token.NewManager(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	}).Issue(user.ID)
	if err != nil {
		logger.Fatal("failed to issue token", zap.Error(err))
	}

	logger.Info("issued token", zap.Uint64("user_id", user.ID), zap.String("role", string(user.Role)), zap.Duration("ttl", cfg.JWTTTL))
	fmt.Println(signed)
}
