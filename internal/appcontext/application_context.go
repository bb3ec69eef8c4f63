package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mail"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mq"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/payment"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/storage"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbConn      *gorm.DB
	DbDao       db.UnifiedDB
	RedisClient *redis.Client
	ProductRepo db.IProductRepository

	EmailProducer mq.Producer
	TokenMaker    token.Maker
	Gateway       payment.IPaymentGateway
	MediaStore    storage.IMediaStore
	EmailSender   mail.EmailSender

	AuthService         service.IAuthService
	UserService         service.IUserService
	AddressService      service.IAddressService
	CatalogService      service.ICatalogService
	ProductService      service.IProductService
	CartService         service.ICartService
	CouponService       service.ICouponService
	OrderService        service.IOrderService
	CheckoutService     service.ICheckoutService
	PaymentService      service.IPaymentService
	ContentService      service.IContentService
	NotificationService service.INotificationService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

// Init 依依賴順序初始化各元件
// config -> logger -> db -> redis -> kafka -> 外部gateway -> services
func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpDbDao(); err != nil {
		return err
	}
	app.setUpRedis()

	if err := app.setUpEmailProducer(); err != nil {
		return err
	}
	if err := app.setUpTokenMaker(); err != nil {
		return err
	}
	app.setUpGateway()

	if err := app.setUpMediaStore(); err != nil {
		return err
	}
	app.setUpMailSender()

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", app.Cf.ModulerName).Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Printf("Start setup database DAO")
	dao := db.NewUnifiedDB(app.DbConn)
	if err := dao.InitMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.DbDao = dao
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis() {
	log.Printf("Start setup redis")
	app.RedisClient = redis_repo.NewRedisClient(app.Cf.RedisAddr, app.Cf.RedisPas)

	// 商品讀取走cache-aside，redis不可用時退回直查db
	cacheRepo := redis_repo.NewProductCacheRepo(app.RedisClient)
	app.ProductRepo = redis_decorator.NewCacheAsideProductRepo(app.DbDao, cacheRepo)
	log.Printf("Finish setup redis")
}

func (app *ApplicationContext) setUpEmailProducer() error {
	log.Printf("Start setup email producer")
	cfg := mq.DefaultConfig()
	cfg.Brokers = app.Cf.GetKafkaBrokers()
	cfg.Topic = app.Cf.EmailTopic

	producer, err := mq.NewProducer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}
	app.EmailProducer = producer
	log.Printf("Finish setup email producer")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	maker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("failed to create token maker: %w", err)
	}
	app.TokenMaker = maker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpGateway() {
	log.Printf("Start setup payment gateway")
	app.Gateway = payment.NewStripeGateway(app.Cf.StripeSecretKey, app.Cf.StripePublicKey, app.Cf.StripeWebhookSc)
	log.Printf("Finish setup payment gateway")
}

func (app *ApplicationContext) setUpMediaStore() error {
	log.Printf("Start setup media store")
	store, err := storage.NewLocalMediaStore(app.Cf.MediaRoot)
	if err != nil {
		return fmt.Errorf("failed to create media store: %w", err)
	}
	app.MediaStore = store
	log.Printf("Finish setup media store")
	return nil
}

func (app *ApplicationContext) setUpMailSender() {
	log.Printf("Start setup mail sender")
	app.EmailSender = mail.NewSMTPSender(app.Cf.SmtpSenderName, app.Cf.EmailAccount, app.Cf.SmtpAuthKey, app.Cf.SmtpHost, app.Cf.SmtpPort)
	log.Printf("Finish setup mail sender")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.NotificationService = service.NewNotificationService(app.EmailProducer, app.Logger)

	app.AuthService = service.NewAuthService(app.DbDao, app.TokenMaker)
	app.UserService = service.NewUserService(app.DbDao, app.ProductRepo, app.MediaStore, app.NotificationService, app.Logger)
	app.AddressService = service.NewAddressService(app.DbDao)
	app.CatalogService = service.NewCatalogService(app.DbDao)
	app.ProductService = service.NewProductService(app.ProductRepo, app.DbDao, app.MediaStore)
	app.CartService = service.NewCartService(app.DbDao, app.ProductRepo)
	app.CouponService = service.NewCouponService(app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao, app.DbDao, app.DbDao, app.DbDao, app.NotificationService, app.Logger)
	app.CheckoutService = service.NewCheckoutService(app.DbDao, app.DbDao, app.DbDao, app.DbDao, app.OrderService, app.Gateway, app.Logger)
	app.PaymentService = service.NewPaymentService(app.DbDao, app.DbDao, app.Gateway, app.NotificationService, app.Logger)
	app.ContentService = service.NewContentService(app.DbDao)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.EmailProducer != nil {
			log.Printf("Closing kafka producer...")
			if err := app.EmailProducer.Close(); err != nil {
				log.Printf("kafka producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
