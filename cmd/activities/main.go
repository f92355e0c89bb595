package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/standards-watch/activities/lib"
	"github.com/standards-watch/activities/lib/activity"
	"github.com/standards-watch/activities/lib/cache"
	"github.com/standards-watch/activities/lib/cache/local"
	"github.com/standards-watch/activities/lib/cache/remote"
	"github.com/standards-watch/activities/lib/issues"
	"github.com/standards-watch/activities/lib/specdoc"
)

// config structure
type activitiesConfig struct {
	lib.BaseConfig
	ActivitiesFile string `mapstructure:"activities_file"`
	Fetch          struct {
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
		MaxRedirects   int `mapstructure:"max_redirects"`
	}
	CacheBackend  cache.Type `mapstructure:"cache_backend"`
	Redis         remote.RedisConfig
	Elasticsearch remote.ElasticsearchConfig
	Github        issues.Config
}

var config activitiesConfig

func initConfig() {
	// initialise config with defaults.
	err := lib.InitializeConfig("./config/activities.yml", map[string]interface{}{
		"log_level":       "info",
		"activities_file": "activities.json",
		"cache_backend":   cache.None,
		"fetch": map[string]interface{}{
			"timeout_seconds": 30,
			"max_redirects":   5,
		},
		"redis": map[string]interface{}{
			"host":        "localhost",
			"port":        6379,
			"ttl_seconds": 86400,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": "spec-pages",
		},
		"github": map[string]interface{}{
			"owner": "standards-watch",
			"repo":  "standards-positions",
			"token": "",
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()

	args := pflag.Args()
	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case "validate":
		loadAndValidate()
	case "format":
		entry := formatEntry(specURLArg(args))
		printEntry(entry)
	case "add":
		file := loadAndValidate()
		entry := formatEntry(specURLArg(args))
		addEntry(file, entry)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `USAGE: %s [--config path] verb [args]
       Verbs:
         add      - Add an entry to the activities file and create a GitHub
                    issue; requires a URL argument
         format   - Print the entry as JSON on stdout; requires a URL argument
         validate - Validate the activities file; no arguments

To create GitHub issues, github.token must be set in the config or via the
GITHUB_TOKEN env var; the token needs the 'repo' permission.
`, os.Args[0])
	os.Exit(1)
}

func specURLArg(args []string) string {
	if len(args) < 2 {
		usage()
	}
	return args[1]
}

// loadAndValidate reads the activities file and exits when it doesn't
// conform.
func loadAndValidate() *activity.File {
	file, err := activity.Load(config.ActivitiesFile)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	if errs := file.Validate(); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Msg(err.Error())
		}
		os.Exit(1)
	}
	return file
}

// formatEntry resolves the specification page and builds a fresh entry for
// it.
func formatEntry(specURL string) activity.Entry {
	httpClient := &http.Client{Timeout: time.Duration(config.Fetch.TimeoutSeconds) * time.Second}
	fetcher := specdoc.NewFetcher(httpClient, pageStore(), config.Fetch.MaxRedirects)

	data, err := fetcher.Resolve(context.Background(), specURL)
	if err != nil {
		log.Fatal().Err(err).Str("url", specURL).Send()
	}
	return activity.NewEntry(data.Title, data.Description, data.Org, data.URL)
}

func addEntry(file *activity.File, entry activity.Entry) {
	if err := file.EnsureUnique(entry); err != nil {
		log.Fatal().Err(err).Send()
	}

	if config.Github.Token == "" {
		log.Warn().Msg("no github token configured; not creating an issue")
	} else {
		number, err := issues.NewClient(config.Github).CreatePositionIssue(context.Background(), entry)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		entry.MozPositionIssue = &number
		log.Info().Int("issue", number).Msg("created GitHub issue")
	}

	if err := file.Append(entry); err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := file.Save(); err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Str("title", entry.Title).Msg("added entry")
}

// pageStore builds the configured fetch cache, nil when disabled or
// unreachable.
func pageStore() remote.Client {
	var store remote.Client
	switch config.CacheBackend {
	case cache.None, "":
		return nil
	case cache.Local:
		store = local.NewStore()
	case cache.Redis:
		store = remote.NewRedisClient(config.Redis)
	case cache.Elasticsearch:
		var err error
		store, err = remote.NewElasticsearchClient(config.Elasticsearch)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
	default:
		log.Fatal().Msg("invalid cache backend type")
	}

	if !store.Ready() {
		log.Warn().Str("backend", string(config.CacheBackend)).Msg("page cache not ready; fetching without it")
		return nil
	}
	return store
}

func printEntry(entry activity.Entry) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	fmt.Println(string(data))
}
