package lib

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

type testConfig struct {
	ActivitiesFile string `mapstructure:"activities_file"`
	Github         struct {
		Owner string
		Repo  string
	}
}

var (
	testFile       = "test-activities.json"
	testOwner      = "standards-watch"
	configFileName string
)

func TestMain(m *testing.M) {
	configMap := map[string]interface{}{
		"activities_file": testFile,
		"github": map[string]interface{}{
			"owner": testOwner,
		},
	}

	filename, err := createConfigFile(configMap, ".", "*.yml")
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Remove(filename)
	os.Exit(code)
}

func TestInitializeConfigFromPath(t *testing.T) {
	resetConfig()

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, testFile, parsedConfig.ActivitiesFile)
	assert.Equal(t, testOwner, parsedConfig.Github.Owner)
}

func TestInitializeConfigDefaults(t *testing.T) {
	resetConfig()

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{
		"github": map[string]interface{}{
			"repo": "standards-positions",
		},
	}, &parsedConfig)

	assert.NoError(t, err)

	// keys absent from the yml fall back to the default config map
	assert.Equal(t, "standards-positions", parsedConfig.Github.Repo)
	assert.Equal(t, testOwner, parsedConfig.Github.Owner)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	resetConfig()

	overrideValue := "elsewhere.json"
	os.Setenv("ACTIVITIES_FILE", overrideValue)
	os.Setenv("GITHUB_OWNER", overrideValue)
	defer os.Unsetenv("ACTIVITIES_FILE")
	defer os.Unsetenv("GITHUB_OWNER")

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.ActivitiesFile)
	assert.Equal(t, overrideValue, parsedConfig.Github.Owner)
}

func createConfigFile(configMap map[string]interface{}, path, name string) (string, error) {
	file, err := ioutil.TempFile(path, name)
	if err != nil {
		return "", err
	}
	configFileName = file.Name()

	data, err := yaml.Marshal(&configMap)
	if err != nil {
		return "", err
	}

	if err := ioutil.WriteFile(configFileName, data, 0); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func resetConfig() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}
