package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/configs"
	"giving-tree-admin/internal/delivery/givingapi"
	httpdelivery "giving-tree-admin/internal/delivery/http"
	"giving-tree-admin/internal/delivery/kafka"
	"giving-tree-admin/internal/delivery/telegram"
	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/repository"
	"giving-tree-admin/internal/repository/postgres"
	"giving-tree-admin/internal/service"
	"giving-tree-admin/internal/uploader"
)

// @title Giving Tree admin dashboard
// @version 1.0
// @description Admin surface for Giving Tree charities: listings, charity forms with wish line items, image upload and a submission audit log.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.Level())
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *gorm.DB
	if cfg.PostgresEnabled() {
		db, err = postgres.ConnectDB(postgres.Config{DSN: cfg.PgDSN()})
		if err != nil {
			logrus.Fatalf("postgres connect: %s", err)
		}
		logrus.Print("connected to postgres")
	} else {
		logrus.Warn("no database configured, submissions are kept in memory")
	}

	repo := repository.NewRepository(db, cfg.DraftTTL, cfg.ListingTTL)
	api := givingapi.NewClient(cfg.GivingAPIURL, cfg.GivingAPITimeout)

	opts := []form.Option{form.WithBounds(cfg.MinWishes, cfg.MaxWishes)}
	if cfg.CloudinaryEnabled() {
		cld, err := uploader.NewCloudinary(uploader.CloudinaryConfig{
			CloudName:    cfg.CloudinaryCloud,
			UploadPreset: cfg.CloudinaryPreset,
			Folder:       cfg.CloudinaryFolder,
		})
		if err != nil {
			logrus.Fatalf("cloudinary: %s", err)
		}
		opts = append(opts, form.WithUploader(uploader.NewOptimizing(cld, cfg.UploadMaxBytes)))
		logrus.Print("image uploads enabled")
	}

	var publisher *kafka.Publisher
	if cfg.KafkaEnabled() {
		publisher = kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		opts = append(opts, form.WithNotifiers(publisher))
	}
	if cfg.TelegramEnabled() {
		tg, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logrus.Errorf("telegram disabled: %s", err)
		} else {
			opts = append(opts, form.WithNotifiers(tg))
			logrus.Print("telegram notifications enabled")
		}
	}

	svc := service.NewService(repo, api, opts...)

	var (
		wg       sync.WaitGroup
		consumer *kafka.Consumer
	)
	if cfg.KafkaEnabled() {
		consumer = kafka.NewConsumer(kafka.Config{
			Brokers: cfg.KafkaBrokersSlice(),
			GroupID: cfg.KafkaGroupID,
			Topic:   cfg.KafkaTopic,
			DLQ:     cfg.KafkaDLQ,
		}, svc)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Subscribe(ctx); err != nil {
				logrus.Errorf("consumer stopped: %v", err)
				cancel()
			}
		}()
		logrus.Print("kafka subscription started")
	}

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	cancel()
	wg.Wait()

	var closeErr *multierror.Error
	if consumer != nil {
		closeErr = multierror.Append(closeErr, consumer.Close())
	}
	if publisher != nil {
		closeErr = multierror.Append(closeErr, publisher.Close())
	}
	if db != nil {
		closeErr = multierror.Append(closeErr, db.Close())
	}
	repo.Close()
	if err := closeErr.ErrorOrNil(); err != nil {
		logrus.Errorf("close: %s", err)
	}
	logrus.Print("service stopped")
}
