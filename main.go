package main

import (
	"context"
	"log"
	"time"

	"github.com/denyszaritskyi/comand-work/config"
	httpapi "github.com/denyszaritskyi/comand-work/internal/api/http"
	"github.com/denyszaritskyi/comand-work/internal/service"
	"github.com/denyszaritskyi/comand-work/internal/storage"
)

const orderEventsTopic = "order-events"

type recordStore interface {
	service.OrderStore
	service.DishStore
}

func main() {
	var store recordStore
	if connStr := config.DatabaseURL(); connStr != "" {
		pg := storage.NewPostgresStore(config.MustInitPostgres(connStr))
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = pg
		log.Println("[tableside] using postgres record store")
	} else {
		store = storage.NewJSONStore(config.DataDir())
		log.Printf("[tableside] using JSON record store in %s", config.DataDir())
	}

	var sessions service.SessionStore = storage.NewMemorySessionStore()
	var cache *storage.RedisCache
	if addr := config.RedisAddr(); addr != "" {
		rdb := config.MustInitRedis(addr)
		cache = storage.NewRedisCache(rdb)
		sessions = storage.NewRedisSessionStore(rdb, 24*time.Hour)
		log.Println("[tableside] redis connected")
	}

	var publisher service.EventPublisher
	if broker := config.KafkaBroker(); broker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(broker, orderEventsTopic))
		if cache != nil {
			consumer := service.NewConsumer(
				config.NewKafkaReader(broker, orderEventsTopic, "tableside-aggregator"),
				cache,
			)
			go consumer.Start(context.Background())
		}
		log.Println("[tableside] kafka connected")
	}

	orderSvc := service.NewOrderService(store, publisher)
	dishSvc := service.NewDishService(store)
	boardSvc := service.NewBoardService(orderSvc)
	historySvc := service.NewHistoryService(sessions)

	var counter service.DishCounter
	if cache != nil {
		counter = cache
	}
	analyticsSvc := service.NewAnalyticsService(store, store, counter)

	handler := httpapi.NewHandler(
		orderSvc,
		dishSvc,
		boardSvc,
		historySvc,
		analyticsSvc,
		service.TableQRGenerator{BaseURL: config.BaseURL()},
	)

	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
