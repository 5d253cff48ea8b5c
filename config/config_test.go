package config

import (
	"encoding/json"
	"os"
	"testing"
)

func TestValidateAndAddDefaults(t *testing.T) {
	// Missing API base URL is the one hard failure.
	cnf := Configuration{}
	err := cnf.validateAndAddDefaults()
	if err == nil || err.Error() != "api base URL is required" {
		t.Errorf("Expected api base URL required error, got %v", err)
	}

	cnf = Configuration{
		Api: ApiConfig{BaseUrl: "https://coordination.example.com/"},
	}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if cnf.ProjectName != "Hemolink" {
		t.Errorf("Expected default project name, got %s", cnf.ProjectName)
	}
	// Trailing slash is trimmed so endpoint paths join cleanly.
	if cnf.Api.BaseUrl != "https://coordination.example.com" {
		t.Errorf("Expected trimmed base URL, got %s", cnf.Api.BaseUrl)
	}
	if cnf.Api.TimeoutSeconds != DEFAULT_TIMEOUT_SECONDS {
		t.Errorf("Expected default timeout %d, got %d", DEFAULT_TIMEOUT_SECONDS, cnf.Api.TimeoutSeconds)
	}
	if cnf.Token.File == "" {
		t.Error("Expected a default token file path")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "hemolink.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	sampleConfig := Configuration{
		ProjectName: "Temp Project",
		Api: ApiConfig{
			BaseUrl:        "https://temp.example.com",
			TimeoutSeconds: 5,
		},
	}
	if err := json.NewEncoder(tmpFile).Encode(sampleConfig); err != nil {
		t.Fatalf("Unable to write to temporary file: %v", err)
	}
	tmpFile.Close()

	// Environment variables override the file.
	os.Setenv("HEMOLINK_PROJECT_NAME", "Env Project")
	defer os.Unsetenv("HEMOLINK_PROJECT_NAME")

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("loadConfigFromFile returned error: %v", err)
	}

	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if cnf.ProjectName != "Env Project" {
		t.Errorf("Expected env override to win, got %s", cnf.ProjectName)
	}
	if cnf.Api.BaseUrl != "https://temp.example.com" {
		t.Errorf("Unexpected base URL %s", cnf.Api.BaseUrl)
	}
	if cnf.Api.TimeoutSeconds != 5 {
		t.Errorf("Unexpected timeout %d", cnf.Api.TimeoutSeconds)
	}
}
