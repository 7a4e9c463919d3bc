package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/9seconds/iplookup/iplist"
	"github.com/9seconds/iplookup/lookuplib"
	"github.com/9seconds/iplookup/providers"
)

func run(ctx context.Context, fs afero.Fs, stdout io.Writer, conf *config, token string, log *logger) error {
	path, err := iplist.Locate(fs, conf.GetInputDirectory())
	if err != nil {
		return err
	}

	ips, err := iplist.Load(fs, path)
	if err != nil {
		return fmt.Errorf("error loading IP list: %w", err)
	}

	log.ListLoaded(path, len(ips))

	prov, err := providers.NewIPInfo(makeNewHTTPClient(conf), token, conf.GetEndpoint())
	if err != nil {
		return fmt.Errorf("IPINFO_TOKEN is not set, please check your .env file: %w", err)
	}

	results := lookuplib.NewClient(prov, log).LookupAll(ctx, ips)

	return lookuplib.WriteResults(stdout, fs, conf.GetOutputFile(), results)
}

func makeNewHTTPClient(conf *config) lookuplib.HTTPClient {
	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
	}

	return lookuplib.NewHTTPClient(httpClient, conf.GetUserAgent())
}

// loadEnvFile populates environment from a dotenv file. Variables which
// are already set are not overridden. Absent file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot load env file %s: %w", path, err)
	}

	return nil
}

func executableDir() string {
	path, err := os.Executable()
	if err != nil {
		return "."
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	return filepath.Dir(path)
}
