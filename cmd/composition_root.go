package cmd

import (
	"fmt"
	"net/http"
	"time"

	apihttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/notify"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/redislock"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	pricing    services.PricingCalculator
	metrics    *metrics.Metrics
	notifier   *notify.Async
	locker     ports.Locker
	now        commands.Clock
	closers    []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	pricing, err := services.NewPricingCalculator(cfg.TaxRate, cfg.ShippingFee, cfg.FreeShippingThreshold)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
		metrics:    metrics.New(),
		now:        time.Now,
	}

	var next ports.Notifier = notify.NewLogNotifier()
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic)
		if err != nil {
			return nil, fmt.Errorf("kafka notifier: %w", err)
		}
		c.closers = append(c.closers, kafka.Close)
		next = kafka
	}
	c.notifier = notify.NewAsync(next, cfg.NotifyTimeout, c.metrics)

	if cfg.RedisAddr != "" {
		client := redislock.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.closers = append(c.closers, client.Close)
		c.locker = redislock.NewLocker(client, "storefront:jobs:")
	}

	return c, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) couponUoW() commands.CouponUoWFactory {
	return FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryManUoW() commands.DeliveryManUoWFactory {
	return FuncDeliveryManUoWFactory(func() commands.DeliveryManUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.pricing, c.notifier, c.now)
}

func (c *CompositionRoot) CreateAssignDeliveryManCommandHandler() commands.AssignDeliveryManCommandHandler {
	return commands.NewAssignDeliveryManCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateUnassignDeliveryManCommandHandler() commands.UnassignDeliveryManCommandHandler {
	return commands.NewUnassignDeliveryManCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateAutoAssignCommandHandler() commands.AutoAssignCommandHandler {
	return commands.NewAutoAssignCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uow(), c.notifier, c.cfg.PayRate, c.now)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	return commands.NewRequestReturnCommandHandler(c.uow(), c.notifier, c.cfg.ReturnWindow, c.now)
}

func (c *CompositionRoot) CreateProcessReturnCommandHandler() commands.ProcessReturnCommandHandler {
	return commands.NewProcessReturnCommandHandler(c.uow(), c.notifier, c.now)
}

func (c *CompositionRoot) CreateOnboardDeliveryManCommandHandler() commands.OnboardDeliveryManCommandHandler {
	return commands.NewOnboardDeliveryManCommandHandler(c.deliveryManUoW())
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.deliveryManUoW())
}

func (c *CompositionRoot) CreateCreateCouponCommandHandler() commands.CreateCouponCommandHandler {
	return commands.NewCreateCouponCommandHandler(c.couponUoW())
}

func (c *CompositionRoot) CreateUpdateCouponCommandHandler() commands.UpdateCouponCommandHandler {
	return commands.NewUpdateCouponCommandHandler(c.couponUoW())
}

func (c *CompositionRoot) CreateDeleteCouponCommandHandler() commands.DeleteCouponCommandHandler {
	return commands.NewDeleteCouponCommandHandler(c.couponUoW())
}

func (c *CompositionRoot) CreateDeactivateExpiredCouponsCommandHandler() commands.DeactivateExpiredCouponsCommandHandler {
	return commands.NewDeactivateExpiredCouponsCommandHandler(c.couponUoW(), c.now)
}

// HTTPHandlers wires every use case exposed by the API.
func (c *CompositionRoot) HTTPHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AssignDeliveryMan:    c.CreateAssignDeliveryManCommandHandler(),
		UnassignDeliveryMan:  c.CreateUnassignDeliveryManCommandHandler(),
		OnboardDeliveryMan:   c.CreateOnboardDeliveryManCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		SetAvailability:      c.CreateSetAvailabilityCommandHandler(),
		RequestReturn:        c.CreateRequestReturnCommandHandler(),
		ProcessReturn:        c.CreateProcessReturnCommandHandler(),
		CreateCoupon:         c.CreateCreateCouponCommandHandler(),
		UpdateCoupon:         c.CreateUpdateCouponCommandHandler(),
		DeleteCoupon:         c.CreateDeleteCouponCommandHandler(),

		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		ListEligible:       queries.NewListEligibleDeliveryMenQueryHandler(c.gormDB),
		DeliveryManOrders:  queries.NewDeliveryManOrdersQueryHandler(c.gormDB),
		DeliveryManProfile: queries.NewDeliveryManProfileQueryHandler(c.gormDB),
		ListCoupons:        queries.NewListCouponsQueryHandler(c.gormDB),
		ValidateCoupon:     queries.NewValidateCouponQueryHandler(c.gormDB, c.now),
		SellerAnalytics:    queries.NewSellerAnalyticsQueryHandler(c.gormDB),
	}
}

// Router builds the HTTP API.
func (c *CompositionRoot) Router() http.Handler {
	server := apihttp.NewServer(c.HTTPHandlers(), c.metrics)
	e := apihttp.NewRouter(server, apihttp.NewAuthenticator(c.cfg.JWTSecret), promhttp.Handler())
	return e
}

// Jobs builds the scheduled jobs. A job with an empty schedule is disabled.
func (c *CompositionRoot) Jobs() *jobs.JobManager {
	var autoAssign *jobs.AutoAssignJob
	if c.cfg.AutoAssignSchedule != "" {
		autoAssign = jobs.NewAutoAssignJob(
			c.CreateAutoAssignCommandHandler(), c.cfg.AutoAssignSchedule, c.cfg.AutoAssignBatch, c.locker, c.metrics,
		)
	}

	var couponExpiry *jobs.CouponExpiryJob
	if c.cfg.CouponExpirySchedule != "" {
		couponExpiry = jobs.NewCouponExpiryJob(
			c.CreateDeactivateExpiredCouponsCommandHandler(), c.cfg.CouponExpirySchedule, c.locker, c.metrics,
		)
	}

	return jobs.NewJobManager(autoAssign, couponExpiry)
}

// Close waits for in-flight notifications and releases external clients.
func (c *CompositionRoot) Close() {
	c.notifier.Wait()
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && err != redis.ErrClosed {
			log.WithField("component", "composition_root").WithError(err).Warn("failed to close client")
		}
	}
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncDeliveryManUoWFactory func() commands.DeliveryManUoW

func (f FuncDeliveryManUoWFactory) Create() commands.DeliveryManUoW {
	return f()
}
