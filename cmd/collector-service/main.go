package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-apt-news-collector/internal/collector/config"
	"golang-apt-news-collector/internal/collector/repository"
	"golang-apt-news-collector/internal/collector/strategy"
	"golang-apt-news-collector/pkg/logger"
	"golang-apt-news-collector/pkg/telegram"
	"golang-apt-news-collector/pkg/utils"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the news collection batch once",
	Run:   runOnceCmd,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the news collection batch on a cron schedule",
	Run:   runServe,
}

func setup() (*config.Config, *logger.Logger, []strategy.CollectionStrategy, telegram.Notifier) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger.Info("Starting Collector Service", logger.Field("name", cfg.App.Name))

	searchRepo := repository.NewNaverNewsRepository(cfg, appLogger)
	relevanceRepo := buildRelevanceRepository(cfg, appLogger)

	var contentRepo repository.ArticleContentRepository
	if cfg.Collector.FetchFullContent {
		contentRepo = repository.NewArticleContentRepository(cfg.Collector.RequestTimeout, appLogger)
	}

	apartmentStore := repository.NewNewsFileRepository(cfg.Collector.ApartmentOutputPath, appLogger)
	regionStore := repository.NewNewsFileRepository(cfg.Collector.RegionOutputPath, appLogger)

	strategies := []strategy.CollectionStrategy{
		strategy.NewApartmentNewsStrategy(cfg, searchRepo, relevanceRepo, contentRepo, apartmentStore, appLogger),
		strategy.NewRegionNewsStrategy(cfg, searchRepo, regionStore, appLogger),
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Failed to initialize Telegram notifier, notifications disabled", logger.ErrorField(err))
			notifier = nil
		}
	}

	return cfg, appLogger, strategies, notifier
}

// buildRelevanceRepository selects the judge once at startup. A missing model
// credential silently selects the keyword judge for the whole run.
func buildRelevanceRepository(cfg *config.Config, appLogger *logger.Logger) repository.RelevanceRepository {
	keyword := repository.NewKeywordRelevanceRepository()

	switch cfg.AI.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			appLogger.Info("OpenAI API key not set, using keyword-based relevance judge")
			return keyword
		}
		return repository.NewFallbackRelevanceRepository(
			repository.NewOpenAIRelevanceRepository(cfg, appLogger), keyword, appLogger)
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			appLogger.Info("Gemini API key not set, using keyword-based relevance judge")
			return keyword
		}
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Warn("Failed to initialize Gemini client, using keyword-based relevance judge", logger.ErrorField(err))
			return keyword
		}
		geminiRepo, err := repository.NewGeminiRelevanceRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Warn("Failed to initialize Gemini judge, using keyword-based relevance judge", logger.ErrorField(err))
			return keyword
		}
		return repository.NewFallbackRelevanceRepository(geminiRepo, keyword, appLogger)
	default:
		return keyword
	}
}

func executeAll(ctx context.Context, strategies []strategy.CollectionStrategy, notifier telegram.Notifier, appLogger *logger.Logger) error {
	for _, s := range strategies {
		status, run, err := s.Execute(ctx)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", s.GetType(), err)
		}
		if status == strategy.SKIPPED {
			appLogger.Info("Collection skipped", logger.StringField("type", s.GetType()))
			continue
		}

		appLogger.Info("Collection finished",
			logger.StringField("type", s.GetType()),
			logger.IntField("entities", len(run.Entities)),
		)

		if notifier != nil {
			if err := notifier.SendMessage(telegram.FormatCollectionRun(s.GetType(), run)); err != nil {
				appLogger.Error("Failed to send Telegram notification", logger.ErrorField(err))
			}
		}
	}
	return nil
}

func runOnceCmd(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, appLogger, strategies, notifier := setup()
	defer func() { _ = appLogger.Sync() }()

	if err := executeAll(ctx, strategies, notifier, appLogger); err != nil {
		appLogger.Fatal("Collection batch failed", logger.ErrorField(err))
	}
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, strategies, notifier := setup()
	defer func() { _ = appLogger.Sync() }()

	schedule := cfg.Collector.CronSchedule
	if schedule == "" {
		schedule = "0 6 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		utils.GoSafe(func() {
			if err := executeAll(ctx, strategies, notifier, appLogger); err != nil {
				appLogger.Error("Scheduled collection failed", logger.ErrorField(err))
			}
		})
	})
	if err != nil {
		appLogger.Fatal("Invalid cron schedule", logger.ErrorField(err), logger.StringField("schedule", schedule))
	}

	c.Start()
	appLogger.Info("Collector service started", logger.StringField("schedule", schedule))

	<-ctx.Done()

	appLogger.Info("Shutting down collector service...")
	<-c.Stop().Done()
	appLogger.Info("Collector service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "collector-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-collector.yaml", "Path to the configuration file")

	rootCmd.AddCommand(runCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing collector-service CLI: %s\n", err)
		os.Exit(1)
	}
}
