package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"ewintr.nl/vidsum/fetcher"
	"ewintr.nl/vidsum/handler"
	"ewintr.nl/vidsum/model"
	"ewintr.nl/vidsum/storage"
	"ewintr.nl/vidsum/summarize"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	// .env is for local development, the platform sets real env vars
	godotenv.Load()

	url := flag.String("url", "", "one-shot mode: summarize this youtube url and exit")
	styleName := flag.String("style", "", "summary style: brief, structured or detailed")
	flag.Parse()

	apiKey := getParam("OPENAI_API_KEY", "")
	if apiKey == "" {
		logger.Error("OPENAI_API_KEY is not set", nil)
		os.Exit(1)
	}

	languages := strings.Split(getParam("TRANSCRIPT_LANGUAGES", "en"), ",")

	acquirer := fetcher.NewAcquirer(fetcher.NewInnertube(&http.Client{Timeout: 30 * time.Second}), logger)
	generator := summarize.NewOpenAI(apiKey, getParam("OPENAI_MODEL", "gpt-4o"))

	var metadata fetcher.MetadataFetcher
	if ytKey := getParam("YOUTUBE_API_KEY", ""); ytKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(ytKey))
		if err != nil {
			logger.Error("unable to create youtube service", err)
			os.Exit(1)
		}
		metadata = fetcher.NewYoutubeData(ytClient)
	}

	pipeline := summarize.NewPipeline(acquirer, generator, metadata, languages, logger)

	if *url != "" {
		summaryRepo := storage.NewFileSummaryRepository(getParam("SUMMARY_DIR", "."))
		if err := runOnce(ctx, pipeline, summaryRepo, *url, *styleName, logger); err != nil {
			logger.Error("could not summarize video", err)
			os.Exit(1)
		}
		return
	}

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", err)
		os.Exit(1)
	}
	go http.ListenAndServe(fmt.Sprintf(":%d", port), handler.NewServer(pipeline, logger))
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func runOnce(ctx context.Context, pipeline *summarize.Pipeline, summaryRepo storage.SummaryRepository, url, styleName string, logger *slog.Logger) error {
	style, err := model.ParseSummaryStyle(styleName)
	if err != nil {
		return err
	}

	summary, err := pipeline.Summarize(ctx, url, style, nil)
	if err != nil {
		return err
	}

	fmt.Println(summary.Text)

	if err := summaryRepo.Save(summary); err != nil {
		logger.Error("could not save summary", err)
	}

	return nil
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
