package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/config"
	"github.com/Astemirdum/bookstore-admin/admin/internal/command"
	"github.com/Astemirdum/bookstore-admin/admin/internal/gateway"
	"github.com/Astemirdum/bookstore-admin/admin/internal/handler"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/admin/internal/workflow"
	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
	"github.com/Astemirdum/bookstore-admin/pkg/logger"
	"github.com/Astemirdum/bookstore-admin/pkg/server"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "admin")
	loc := cfg.Location()

	var producer sarama.AsyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		p, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		producer = p
		go func() {
			for perr := range p.Errors() {
				log.Warn("kafka publish", zap.Error(perr))
			}
		}()
	}

	store := gateway.NewService(log, cfg.RecordStore)
	render := view.NewRenderer(loc)
	opts := []workflow.Option{
		workflow.WithClock(func() time.Time { return time.Now().In(loc) }),
		workflow.WithSearchDebounce(cfg.View.SearchDebounce),
		workflow.WithEvents(kafka.NewPublisher(producer, cfg.Kafka.Topic)),
	}
	books := workflow.NewBooksView(store, render, log, opts...)
	orders := workflow.NewOrdersView(store, render, log, opts...)
	dash := workflow.NewDashboardView(store, render, log, opts...)

	h := handler.New(command.New(books, orders, dash), books, orders, dash, log)
	router, err := h.NewRouter()
	if err != nil {
		log.Fatal("router", zap.Error(err))
	}
	srv := server.NewServer(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, router)
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("kafka producer close", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
}
