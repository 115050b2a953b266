package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ougirez/kisan/internal/api"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store"
)

func initConfig() {
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyPostgresDSN, "")
	viper.SetDefault(constants.ViperKeyEnvironment, constants.EnvDevelopment)
	viper.SetDefault(constants.ViperSecretKey, "")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("kisan")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// a missing config file is fine, env and defaults cover everything
	_ = viper.ReadInConfig()
}

func main() {
	ctx := context.Background()

	initConfig()

	if viper.GetString(constants.ViperKeyEnvironment) == constants.EnvDevelopment {
		logger.Init(zap.Must(zap.NewDevelopment()))
	}
	defer logger.Sync()

	st := store.New(ctx)
	defer st.Close()

	svc, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
