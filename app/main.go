package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/feedguard/feedguard/app/webapi"
	"github.com/feedguard/feedguard/lib/classifier"
	"github.com/feedguard/feedguard/lib/feedback"
)

type options struct {
	Server struct {
		ListenAddr  string        `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd  string        `long:"auth-passwd" env:"AUTH_PASSWD" description:"basic auth password for user \"feedback\", disabled if empty"`
		HistorySize int           `long:"history-size" env:"HISTORY_SIZE" default:"100" description:"number of recent results to keep"`
		CacheTTL    time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"5m" description:"classification result cache ttl"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Files struct {
		StopWordsFile string `long:"stop-words" env:"STOP_WORDS" default:"data/stopwords.txt" description:"stop words file"`
		PositiveFile  string `long:"positive" env:"POSITIVE" default:"data/positive.txt" description:"positive lexicon file"`
		NegativeFile  string `long:"negative" env:"NEGATIVE" default:"data/negative.txt" description:"negative lexicon file"`
	} `group:"files" namespace:"files" env-namespace:"FILES"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable rotated abuse audit log"`
		FileName   string `long:"file" env:"FILE" default:"feedguard-abuse.log" description:"location of abuse audit log"`
		MaxSize    int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in megabytes before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	SimilarityThreshold float64 `long:"similarity-threshold" env:"SIMILARITY_THRESHOLD" default:"0.8" description:"fuzzy match threshold for sentiment scoring"`
	Dbg                 bool    `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("feedguard %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	cl, err := makeClassifier(opts)
	if err != nil {
		// refuse to serve rather than run with disabled abuse detection
		return fmt.Errorf("can't make classifier: %w", err)
	}

	loggerWr, err := makeAbuseLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make abuse log writer: %w", err)
	}
	defer loggerWr.Close()

	srv := webapi.NewServer(webapi.Config{
		Version:     revision,
		ListenAddr:  opts.Server.ListenAddr,
		Classifier:  cl,
		AuthPasswd:  opts.Server.AuthPasswd,
		AbuseLogger: makeAbuseLogger(loggerWr),
		HistorySize: opts.Server.HistorySize,
		CacheTTL:    opts.Server.CacheTTL,
		Dbg:         opts.Dbg,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("webapi server failed: %w", err)
	}
	return nil
}

// makeClassifier creates the classification engine and loads the three
// lexicon files. Any missing or empty lexicon is fatal, serving with
// incomplete stores would silently cripple classification.
func makeClassifier(opts options) (*classifier.Classifier, error) {
	cl, err := classifier.NewClassifier(classifier.Config{SimilarityThreshold: opts.SimilarityThreshold})
	if err != nil {
		return nil, fmt.Errorf("can't create classifier: %w", err)
	}

	open := func(name string) (*os.File, error) {
		fh, err := os.Open(name) //nolint:gosec // file names come from the operator's flags
		if err != nil {
			return nil, fmt.Errorf("can't open lexicon file %s: %w", name, err)
		}
		return fh, nil
	}

	stopWords, err := open(opts.Files.StopWordsFile)
	if err != nil {
		return nil, err
	}
	defer stopWords.Close()

	positive, err := open(opts.Files.PositiveFile)
	if err != nil {
		return nil, err
	}
	defer positive.Close()

	negative, err := open(opts.Files.NegativeFile)
	if err != nil {
		return nil, err
	}
	defer negative.Close()

	res, err := cl.LoadLexicons(stopWords, positive, negative)
	if err != nil {
		return nil, fmt.Errorf("can't load lexicons: %w", err)
	}
	log.Printf("[INFO] lexicons loaded: stop-words=%d, positive=%d, negative=%d", res.StopWords, res.PositiveWords, res.NegativeWords)
	return cl, nil
}

// makeAbuseLogger creates audit logger keeping reports about abusive
// submissions, it writes json lines to the provided writer
func makeAbuseLogger(wr io.Writer) webapi.AbuseLogger {
	return webapi.AbuseLoggerFunc(func(text string, res feedback.Result) {
		log.Printf("[INFO] abusive feedback detected: %s", feedback.ChecksToString(res.Checks))
		m := struct {
			TimeStamp string           `json:"ts"`
			Text      string           `json:"text"`
			Checks    []feedback.Check `json:"checks"`
		}{
			TimeStamp: time.Now().In(time.Local).Format(time.RFC3339),
			Text:      text,
			Checks:    res.Checks,
		}
		line, err := json.Marshal(&m)
		if err != nil {
			log.Printf("[WARN] can't marshal json, %v", err)
			return
		}
		if _, err := wr.Write(append(line, '\n')); err != nil {
			log.Printf("[WARN] can't write to abuse log, %v", err)
		}
	})
}

// makeAbuseLogWriter creates the rotated writer for the abuse audit log
func makeAbuseLogWriter(opts options) (io.WriteCloser, error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}
	if opts.Logger.MaxSize <= 0 {
		return nil, fmt.Errorf("invalid logger max size %d", opts.Logger.MaxSize)
	}
	log.Printf("[INFO] abuse audit log enabled for %s, max size %dM", opts.Logger.FileName, opts.Logger.MaxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    opts.Logger.MaxSize, // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
