package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.1.0"

const tokenEnvName = "IPINFO_TOKEN"

var (
	app = kingpin.New(
		"iplookup",
		"Geolocate a list of IP addresses with ipinfo.io")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("IPLOOKUP_DEBUG").
		Bool()
	token = app.Flag("token", "ipinfo.io access token. Default is taken from "+tokenEnvName+".").
		String()
	configPath = app.Flag("config", "Path to the optional hjson config.").
			Short('c').
			String()
	inputDirectory = app.Flag("dir", "Directory with iplist*.txt file. Default is a directory of the binary.").
			String()
	outputFile = app.Flag("output", "Path to the file with results.").
			Short('o').
			String()
	envFile = app.Flag("env-file", "Path to the dotenv file.").
		Default(".env").
		String()
)

func init() {
	app.Version(version)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := mainErr(); err != nil {
		fmt.Printf("An error occurred: %s\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	fs := afero.NewOsFs()
	log := newLogger(os.Stderr, *debug)

	if err := loadEnvFile(*envFile); err != nil {
		return err
	}

	conf, err := parseConfig(fs, *configPath)
	if err != nil {
		return err
	}

	if *inputDirectory != "" {
		conf.InputDirectory = *inputDirectory
	}

	if *outputFile != "" {
		conf.OutputFile = *outputFile
	}

	authToken := *token
	if authToken == "" {
		authToken = os.Getenv(tokenEnvName)
	}

	return run(context.Background(), fs, os.Stdout, conf, authToken, log)
}
