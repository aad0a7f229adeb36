package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/nurul-islam-bot/internal/config"
	"github.com/aliskhannn/nurul-islam-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/nurul-islam-bot/internal/delivery/telegram"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/aladhan"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/alquran"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/cache"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/hadithapi"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/nurul-islam-bot/internal/logger"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
	"github.com/aliskhannn/nurul-islam-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "বট চালু করুন"},
		{Command: "prayer", Description: "নামাজের সময়সূচি"},
		{Command: "qibla", Description: "কিবলার দিক"},
		{Command: "quran", Description: "কুরআন পড়ুন ও শুনুন"},
		{Command: "hadith", Description: "হাদিস গ্রন্থসমূহ"},
		{Command: "dua", Description: "দোয়া"},
		{Command: "tasbih", Description: "তাসবিহ গণনা"},
		{Command: "settings", Description: "সেটিংস"},
		{Command: "reset", Description: "সব তথ্য মুছে ফেলুন"},
		{Command: "help", Description: "সাহায্য"},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database url", zap.Error(err))
	}

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(dsn); err != nil {
			lg.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := cache.NewClient(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lg.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()
	providerCache := cache.New(rdb, cfg.Redis.PrayerTTL, cfg.Redis.QuranTTL)

	// Initialize provider clients.
	prayerClient, err := aladhan.NewClient(cfg.Providers.PrayerBaseURL, cfg.Providers.Timeout)
	if err != nil {
		lg.Fatal("failed to create prayer client", zap.Error(err))
	}
	quranClient, err := alquran.NewClient(cfg.Providers.QuranBaseURL, cfg.Providers.Timeout)
	if err != nil {
		lg.Fatal("failed to create quran client", zap.Error(err))
	}
	hadithClient, err := hadithapi.NewClient(cfg.Providers.HadithBaseURL, cfg.Providers.Timeout)
	if err != nil {
		lg.Fatal("failed to create hadith client", zap.Error(err))
	}

	// Initialize repositories.
	userRepo := repository.NewUserRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	readingRepo := repository.NewReadingRepository(pool)
	tasbihRepo := repository.NewTasbihRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)
	tr := postgres.NewTransactor(pool)

	// Initialize in-memory storages.
	tasbihStorage := storage.NewTasbihStorage()
	messageStorage := storage.NewMessageStorage()
	promptStorage := storage.NewPromptStorage()

	// Initialize services.
	matcher := service.NewSearchMatcher()
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	prayerService := service.NewPrayerService(settingsRepo, prayerClient, providerCache, lg)
	qiblaService := service.NewQiblaService(settingsRepo)
	quranService := service.NewQuranService(quranClient, providerCache, readingRepo, matcher, lg)
	hadithService := service.NewHadithService(hadithClient, matcher)
	duaService := service.NewDuaService(matcher)
	tasbihService := service.NewTasbihService(tasbihStorage, tasbihRepo, lg)
	dashboardService := service.NewDashboardService(settingsService, prayerService, quranService, lg)
	resetService := service.NewResetService(tr, tasbihService)
	alertService := service.NewPrayerAlertService(alertRepo, userRepo, prayerService, service.AlertOptions{
		Schedule:      cfg.Alerts.Schedule,
		BatchSize:     cfg.Alerts.BatchSize,
		MaxConcurrent: cfg.Alerts.MaxConcurrent,
	}, lg)

	locator := player.Locator{
		SurahTemplate: cfg.Providers.SurahAudio,
		AyahTemplate:  cfg.Providers.AyahAudio,
	}

	// Chat sessions drive a Telegram audio message; web sessions play in the browser.
	chatPlayer := player.NewRegistry(locator, telegram.NewMediaFactory(bot, messageStorage, lg))
	webPlayer := player.NewRegistry(locator, func(string) player.Media { return player.PassiveMedia{} },
		player.WithMaxSessions(cfg.Player.MaxSessions))

	handler := telegram.NewHandler(
		bot,
		lg,
		telegram.Services{
			User:      userService,
			Settings:  settingsService,
			Prayer:    prayerService,
			Qibla:     qiblaService,
			Quran:     quranService,
			Hadith:    hadithService,
			Dua:       duaService,
			Tasbih:    tasbihService,
			Dashboard: dashboardService,
			Reset:     resetService,
		},
		chatPlayer,
		promptStorage,
	)
	alertService.SetNotifier(handler)

	router := httpapi.NewRouter(httpapi.Services{
		Prayer: prayerService,
		Qibla:  qiblaService,
		Quran:  quranService,
		Hadith: hadithService,
		Dua:    duaService,
		Player: webPlayer,
	}, cfg.HTTP.AllowOrigins, lg)
	server := httpapi.NewServer(cfg.HTTP.Addr, router, lg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		alertService.Start(gctx)
		return nil
	})
	g.Go(func() error {
		return handler.Run(gctx)
	})
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		webPlayer.RunJanitor(gctx, cfg.Player.SweepInterval, cfg.Player.IdleTimeout, lg)
		return nil
	})

	if err := g.Wait(); err != nil {
		lg.Error("shutdown with error", zap.Error(err))
		return
	}
	lg.Info("shutdown complete")
}
