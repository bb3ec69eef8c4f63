package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mq"
	"github.com/RoyceAzure/lab/shopcenter/internal/worker"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	cfg := mq.DefaultConfig()
	cfg.Brokers = app.Cf.GetKafkaBrokers()
	cfg.Topic = app.Cf.EmailTopic
	cfg.ConsumerGroup = app.Cf.EmailGroup

	consumer, err := mq.NewConsumer(cfg)
	if err != nil {
		log.Fatal(err)
		return
	}

	emailWorker := worker.NewEmailWorker(consumer, app.DbDao, app.DbDao, app.EmailSender, app.Logger)

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")
		cancel()
	}()

	log.Printf("email worker starting, topic=%s group=%s", cfg.Topic, cfg.ConsumerGroup)
	if err := emailWorker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("email worker stopped with error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := consumer.Close(); err != nil {
		log.Printf("consumer close error: %v", err)
	}
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("Application shutdown error: %v", err)
	}
	log.Printf("closed completed")
}
