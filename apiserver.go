// Copyright 2024 Institute for Language Sciences,
//                Faculty of Humanities, Utrecht University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pextract/cnf"
	"pextract/docs"
	"pextract/engine"
	extractionActions "pextract/extraction/handlers"
	"pextract/general"
	"pextract/rdb"
)

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	radapter *rdb.Adapter
	archive  *engine.ResultArchive
	version  general.VersionInfo
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	exActions := extractionActions.NewActions(
		api.conf.CorporaSetup, api.radapter, api.archive)

	engine.GET("/", mkServerInfo(api.conf, api.version))

	docs.SwaggerInfo.BasePath = ""
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// also serve the JSON variant of the docs:
	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	protected := engine.Group("/").Use(AuthRequired(api.conf))

	protected.GET(
		"/corpora", exActions.Corplist)

	protected.GET(
		"/corpora/:corpusId", exActions.CorpusInfo)

	protected.GET(
		"/extraction/:corpusId", exActions.Extract)

	protected.GET(
		"/extraction-csv/:corpusId", exActions.ExtractCSV)

	protected.GET(
		"/alignment/:corpusId", exActions.AlignInfo)

	if api.archive != nil {
		protected.GET(
			"/result/:resultId", exActions.ArchivedResult)

	} else {
		log.Warn().Msg("the result archive is not configured, endpoint /result/:resultId will be disabled")
	}

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down PExtract HTTP API server")
	return s.server.Shutdown(ctx)
}

func mkServerInfo(conf *cnf.Conf, version general.VersionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":    "PExtract - a verb construction extraction server",
			"version": version,
			"apiDocs": conf.PublicURL + "/docs/index.html",
		})
	}
}

func runApiServer(conf *cnf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(ctx, conf.Redis, conf.ResultCacheDir)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}

	var archive *engine.ResultArchive
	if conf.ResultDB != nil {
		db, err := engine.Open(conf.ResultDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open the result archive database")
			return
		}
		archive = engine.NewResultArchive(ctx, db)
	}

	server := &apiServer{
		conf:     conf,
		radapter: radapter,
		archive:  archive,
		version: general.VersionInfo{
			Version:   cleanVersionInfo(version),
			BuildDate: cleanVersionInfo(buildDate),
			GitCommit: cleanVersionInfo(gitCommit),
		},
	}

	services := []service{server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
