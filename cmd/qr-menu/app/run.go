package app

import (
	"context"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Asilbek2706/QR-Menu-Editor/configs"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/blob"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/gemini"
	httpadapter "github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/http"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/repo"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/logging"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the whole application: snapshot blobs (file or
// redis), the menu and order stores, the lifecycle engine and views,
// and the HTTP surface.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	ctx := context.Background()

	var (
		menuBlob  blob.Blob
		orderBlob blob.Blob
		rdb       *redis.Client
	)
	if cfg.Store.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		menuBlob = blob.NewRedis(rdb, "qr-menu:restaurant")
		orderBlob = blob.NewRedis(rdb, "qr-menu:orders")
	} else {
		var err error
		menuBlob, err = blob.NewFile(filepath.Join(cfg.Store.Dir, "restaurant.json"))
		if err != nil {
			return nil, nil, err
		}
		orderBlob, err = blob.NewFile(filepath.Join(cfg.Store.Dir, "orders.json"))
		if err != nil {
			return nil, nil, err
		}
	}

	menuStore, err := repo.NewMenuStore(ctx, menuBlob, logging.New("menu-store"))
	if err != nil {
		return nil, nil, err
	}
	orderStore, err := repo.NewOrderStore(ctx, orderBlob, logging.New("order-store"))
	if err != nil {
		return nil, nil, err
	}

	place := usecase.NewPlaceOrder(orderStore, menuStore, cfg.Menu.DefaultPrepMinutes)
	transition := usecase.NewTransition(orderStore)
	tracking := usecase.NewTracking(orderStore)
	dashboard := usecase.NewDashboard(orderStore)

	suggester := gemini.New(cfg.Suggest.APIKey, cfg.Suggest.Model, cfg.Suggest.Timeout, logging.New("gemini"))
	suggest := usecase.NewSuggest(menuStore, suggester)

	ch := httpadapter.NewCustomerHandler(place, tracking, menuStore)
	oh := httpadapter.NewOperatorHandler(dashboard, transition, suggest, menuStore, cfg.App.BaseURL)
	router := httpadapter.NewRouter(logging.New("http"), ch, oh)

	logger.Info("qr-menu wired",
		"store", storeKind(cfg), "suggestions_enabled", cfg.Suggest.APIKey != "")

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return &App{Router: router}, cleanup, nil
}

func storeKind(cfg configs.Config) string {
	if cfg.Store.RedisAddr != "" {
		return "redis"
	}
	return "file"
}
