package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hjson/hjson-go/v4"
	"github.com/juju/errors"
	"github.com/qri-io/jsonschema"
	"github.com/spf13/afero"

	"github.com/9seconds/iplookup/lookuplib"
	"github.com/9seconds/iplookup/providers"
)

const DefaultUserAgent = "iplookup/" + version

var configJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "additionalProperties": false,
        "properties": {
            "input_directory": {
                "type": "string",
                "minLength": 1
            },
            "output_file": {
                "type": "string",
                "minLength": 1
            },
            "http_timeout": {
                "type": "string",
                "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$"
            },
            "user_agent": {
                "type": "string",
                "minLength": 1
            },
            "endpoint": {
                "type": "string",
                "pattern": "^https?://"
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v string

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("incorrect duration: %w", err)
	}

	dur, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	InputDirectory string   `json:"input_directory"`
	OutputFile     string   `json:"output_file"`
	HTTPTimeout    duration `json:"http_timeout"`
	UserAgent      string   `json:"user_agent"`
	Endpoint       string   `json:"endpoint"`
}

func (c config) GetInputDirectory() string {
	if c.InputDirectory != "" {
		return c.InputDirectory
	}

	return executableDir()
}

func (c config) GetOutputFile() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}

	return lookuplib.DefaultResultsFileName
}

// GetHTTPTimeout returns 0 by default: no timeout.
func (c config) GetHTTPTimeout() time.Duration {
	return c.HTTPTimeout.Duration
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return DefaultUserAgent
}

func (c config) GetEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}

	return providers.DefaultIPInfoEndpoint
}

func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := &config{}

	if path == "" {
		return conf, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot read config %s", path)
	}

	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, errors.Annotatef(err, "cannot parse config %s", path)
	}

	rawBytes, err := json.Marshal(rawMap)
	if err != nil {
		return nil, errors.Annotate(err, "cannot convert config to json")
	}

	errs, err := configJSONSchema.ValidateBytes(context.Background(), rawBytes)
	if err != nil {
		return nil, errors.Annotate(err, "cannot validate config")
	}

	if len(errs) > 0 {
		return nil, errors.Annotatef(errs[0], "invalid config %s", path)
	}

	if err := json.Unmarshal(rawBytes, conf); err != nil {
		return nil, errors.Annotatef(err, "invalid config %s", path)
	}

	return conf, nil
}
