package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"calremind/internal/config"
	"calremind/internal/core/domain/bot"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	dl "calremind/internal/core/domain/logging"
	drl "calremind/internal/core/domain/rate_limiter"
	"calremind/internal/core/domain/reminder"
	duow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	dbevent "calremind/internal/db/event"
	dbgroup "calremind/internal/db/group"
	dbreminder "calremind/internal/db/reminder"
	uow "calremind/internal/db/unit_of_work"
	dbuser "calremind/internal/db/user"
	deliveryevents "calremind/internal/implementations/delivery_events"
	"calremind/internal/implementations/email"
	"calremind/internal/implementations/logging"
	passwordhasher "calremind/internal/implementations/password_hasher"
	randomstringgenerator "calremind/internal/implementations/random_string_generator"
	ratelimiter "calremind/internal/implementations/rate_limiter"
	telegrambotmessagesender "calremind/internal/implementations/telegram_bot_message_sender"
	"calremind/internal/rabbitmq"
	deliveredreminders "calremind/internal/rabbitmq/publishers/delivered_reminders"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork             duow.UnitOfWork
	UserRepository         user.UserRepository
	SessionRepository      user.SessionRepository
	TelegramLinkRepository user.TelegramLinkRepository
	GroupRepository        group.GroupRepository
	MembershipRepository   group.MembershipRepository
	EventRepository        event.EventRepository
	ReminderRepository     reminder.ReminderRepository

	RateLimiter drl.RateLimiter

	EmailSender              *email.EmailSender
	TelegramBotMessageSender bot.MessageSender
	DeliveredPublisher       reminder.DeliveredPublisher

	UserActivationTokenGenerator user.ActivationTokenGenerator
	UserActivationTokenSender    user.ActivationTokenSender
	UserSessionTokenGenerator    user.SessionTokenGenerator
	LinkCodeGenerator            user.LinkCodeGenerator
	PasswordHasher               user.PasswordHasher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.TelegramLinkRepository = dbuser.NewPgxTelegramLinkRepository(deps.DB)
	deps.GroupRepository = dbgroup.NewPgxGroupRepository(deps.DB)
	deps.MembershipRepository = dbgroup.NewPgxMembershipRepository(deps.DB)
	deps.EventRepository = dbevent.NewPgxEventRepository(deps.DB)
	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)

	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailActivateAccountTemplate,
		deps.Config.AwsEmailActivationUrl,
	)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.UserActivationTokenGenerator = randomstringgenerator.NewGenerator()
	deps.UserActivationTokenSender = deps.EmailSender
	deps.UserSessionTokenGenerator = randomstringgenerator.NewGenerator()
	deps.LinkCodeGenerator = randomstringgenerator.NewGenerator()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)

	deps.TelegramBotMessageSender = telegrambotmessagesender.New(
		deps.Config.TelegramBaseURL,
		deps.Config.TelegramToken,
		deps.Config.TelegramRequestTimeout,
	)

	closeDeliveredPublisher := deps.initRabbitmqDeliveredPublisher()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeDeliveredPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqDeliveredPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqDeliveredExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exhange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqDeliveredQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqDeliveredQueue,
		deps.Config.RabbitmqDeliveredQueue,
		deps.Config.RabbitmqDeliveredExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exhange.", dl.Entry("err", err))
		panic(err)
	}

	deps.DeliveredPublisher = deliveryevents.NewFanout(
		deliveredreminders.NewRabbitMQ(
			deps.Logger,
			rabbitmqChannel,
			deps.Config.RabbitmqDeliveredExchange,
			deps.Config.RabbitmqDeliveredQueue,
		),
		deliveryevents.NewSSENotifier(deps.SseServer),
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down delivered-reminder publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Delivered-reminder publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
