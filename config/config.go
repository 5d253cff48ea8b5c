/*
Copyright 2025 Hemolink Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	// A submission that exceeds this bound is aborted and reported as
	// a timeout.
	DEFAULT_TIMEOUT_SECONDS = 10
)

var ConfigStore atomic.Value

type ApiConfig struct {
	BaseUrl        string `json:"base_url" envconfig:"HEMOLINK_API_BASE_URL"`
	TimeoutSeconds int    `json:"timeout_seconds" envconfig:"HEMOLINK_API_TIMEOUT_SECONDS"`
}

type TokenConfig struct {
	File string `json:"file" envconfig:"HEMOLINK_TOKEN_FILE"`
}

type Configuration struct {
	ProjectName string      `json:"project_name" envconfig:"HEMOLINK_PROJECT_NAME"`
	Api         ApiConfig   `json:"api"`
	Token       TokenConfig `json:"token"`
}

// RequestTimeout returns the submission deadline as a duration.
func (cnf *Configuration) RequestTimeout() time.Duration {
	return time.Duration(cnf.Api.TimeoutSeconds) * time.Second
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("hemolink", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called hemolink.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Hemolink"
	}

	if cnf.Api.BaseUrl == "" {
		log.Println("Error: API base URL is empty. It's a required field.")
		return errors.New("api base URL is required")
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Api.BaseUrl = strings.TrimSpace(cnf.Api.BaseUrl)

	// Endpoint paths start with a slash; keep the base bare.
	cnf.Api.BaseUrl = strings.TrimRight(cnf.Api.BaseUrl, "/")

	if cnf.Api.TimeoutSeconds <= 0 {
		cnf.Api.TimeoutSeconds = DEFAULT_TIMEOUT_SECONDS
		log.Printf("Warning: Request timeout not specified. Setting default value: %ds", DEFAULT_TIMEOUT_SECONDS)
	}

	if cnf.Token.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cnf.Token.File = filepath.Join(home, ".hemolink", "tokens.json")
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	if err := mockConfig.validateAndAddDefaults(); err != nil {
		log.Println(err)
	}
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
