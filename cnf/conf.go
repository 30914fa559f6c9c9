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

package cnf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"pextract/corpus"
	"pextract/engine"
	"pextract/monitoring"
	"pextract/rdb"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltTimeZone               = "Europe/Amsterdam"
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string               `json:"listenAddress"`
	PublicURL              string               `json:"publicUrl"`
	ListenPort             int                  `json:"listenPort"`
	ServerReadTimeoutSecs  int                  `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                  `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string             `json:"corsAllowedOrigins"`
	CorporaSetup           *corpus.CorporaSetup `json:"corpora"`
	Redis                  *rdb.Conf            `json:"redis"`

	// ResultCacheDir enables file-backed caching of worker results
	// when set.
	ResultCacheDir string `json:"resultCacheDir"`

	// ResultDB enables the MySQL result archive when set.
	ResultDB *engine.DBConf `json:"resultDb"`

	// Monitoring enables TimescaleDB job reporting when set.
	Monitoring *monitoring.Conf `json:"monitoring"`

	LogFile        string           `json:"logFile"`
	LogLevel       logging.LogLevel `json:"logLevel"`
	TimeZone       string           `json:"timeZone"`
	AuthHeaderName string           `json:"authHeaderName"`
	AuthTokens     []string         `json:"authTokens"`

	srcPath string
}

func (conf *Conf) LoadSubconfigs() error {
	if conf.CorporaSetup.ConfFilesDir != "" {
		if err := conf.CorporaSetup.Resources.Load(conf.CorporaSetup.ConfFilesDir); err != nil {
			return fmt.Errorf("failed to load subconfig for `corpora`: %w", err)
		}
	}
	return nil
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = sonic.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s", conf.ListenAddress)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}
	if err := conf.Redis.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := conf.CorporaSetup.ValidateAndDefaults("corpora"); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if conf.ResultDB != nil {
		if err := conf.ResultDB.Validate("resultDb"); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		log.Fatal().Err(err).Msg("invalid time zone")
	}
}
