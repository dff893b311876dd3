package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/willowmere/gofiction/pkg/content"
	"github.com/willowmere/gofiction/pkg/game"
	"github.com/willowmere/gofiction/pkg/mecs"
	"github.com/willowmere/gofiction/pkg/transcript"
)

// envDefault returns the environment variable value if set, otherwise the fallback.
func envDefault(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

func main() {
	confFile := flag.String("conf", envDefault("FICTION_CONF", ""), "Path to game config file (env: FICTION_CONF)")
	worldFile := flag.String("world", envDefault("FICTION_WORLD", ""), "Path to world definition file, empty = built-in world (env: FICTION_WORLD)")
	transcriptFile := flag.String("transcript", envDefault("FICTION_TRANSCRIPT", ""), "Path to transcript database, empty = no recording (env: FICTION_TRANSCRIPT)")
	prompt := flag.String("prompt", "", "Input prompt, overrides config")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	conf := game.DefaultGameConf()
	if *confFile != "" {
		var err error
		conf, err = game.LoadGameConf(*confFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if *worldFile != "" {
		conf.WorldFile = *worldFile
	}
	if *transcriptFile != "" {
		conf.TranscriptFile = *transcriptFile
	}
	if *prompt != "" {
		conf.Prompt = *prompt
	}
	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		log.SetLevel(level)
	}

	def := content.Default()
	if conf.WorldFile != "" {
		var err error
		def, err = content.Load(conf.WorldFile)
		if err != nil {
			log.Fatalf("loading world: %v", err)
		}
	}

	scene := mecs.NewScene()
	if _, err := content.Build(scene, def); err != nil {
		log.Fatalf("building world: %v", err)
	}

	console := game.NewConsole(os.Stdin, os.Stdout, conf.Prompt)
	g := game.NewGame(scene, console, log)

	if conf.TranscriptFile != "" {
		store, err := transcript.Open(conf.TranscriptFile)
		if err != nil {
			log.Fatalf("opening transcript: %v", err)
		}
		defer store.Close()
		g.Recorder = store
		log.WithFields(logrus.Fields{
			"path":    store.Path(),
			"session": store.Session(),
		}).Info("recording transcript")
	}

	log.WithField("game", conf.GameName).Debug("starting turn loop")
	g.Run()
	log.Debug("input closed, shutting down")
}
