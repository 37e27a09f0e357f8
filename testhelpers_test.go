//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/driventix/service-hotel/internal/application"
	hotelEvents "github.com/driventix/service-hotel/internal/events"
	"github.com/driventix/service-hotel/internal/platform/kafka"
	"github.com/driventix/service-hotel/internal/repository"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// hotelStack holds wired-up hotel service components.
type hotelStack struct {
	Bookings        *application.BookingService
	Tickets         *application.TicketService
	Consumer        *hotelEvents.PaymentEventConsumer
	CleanupProducer func()
}

// seededUser is one fully provisioned user: enrollment plus ticket.
type seededUser struct {
	UserID       int64
	EnrollmentID int64
	TicketID     int64
}

// setupContainers starts PostgreSQL and Kafka testcontainers and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_hotel",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_hotel sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.HotelModel{},
		&repository.RoomModel{},
		&repository.EnrollmentModel{},
		&repository.TicketTypeModel{},
		&repository.TicketModel{},
		&repository.BookingModel{},
		&repository.SessionModel{},
	))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, kafkaBrokers, hotelEvents.TopicBookingEvents, hotelEvents.TopicPaymentEvents)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupHotelStack wires up the full hotel service stack.
func setupHotelStack(t *testing.T, db *gorm.DB, brokers []string) *hotelStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	bookingRepo := repository.NewGormBookingRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	enrollmentRepo := repository.NewGormEnrollmentRepository(db)
	ticketRepo := repository.NewGormTicketRepository(db)
	producer := kafka.NewProducer(brokers, logger)

	eligibilitySvc := application.NewEligibilityService(enrollmentRepo, ticketRepo, logger)
	bookingSvc := application.NewBookingService(bookingRepo, roomRepo, eligibilitySvc, producer, logger)
	ticketSvc := application.NewTicketService(ticketRepo, logger)

	groupID := fmt.Sprintf("test-hotel-%s", uuid.New().String()[:8])
	consumer := hotelEvents.NewPaymentEventConsumer(brokers, groupID, ticketSvc, logger)

	return &hotelStack{
		Bookings:        bookingSvc,
		Tickets:         ticketSvc,
		Consumer:        consumer,
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// seedHotelWithRoom inserts a hotel and one room with the given capacity.
func seedHotelWithRoom(t *testing.T, db *gorm.DB, capacity int) (hotelID, roomID int64) {
	t.Helper()
	now := time.Now().UTC()

	hotel := repository.HotelModel{
		Name:      "Grand Plaza",
		Image:     "https://img.example/plaza.jpg",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&hotel).Error, "failed to seed hotel")

	room := repository.RoomModel{
		HotelID:   hotel.ID,
		Name:      "Standard Twin",
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&room).Error, "failed to seed room")

	return hotel.ID, room.ID
}

// seedUserWithTicket inserts an enrollment plus a ticket of the given status
// and classification for the user.
func seedUserWithTicket(t *testing.T, db *gorm.DB, userID int64, status string, isRemote, includesHotel bool) seededUser {
	t.Helper()
	now := time.Now().UTC()

	enrollment := repository.EnrollmentModel{
		UserID:    userID,
		CreatedAt: now,
	}
	require.NoError(t, db.Create(&enrollment).Error, "failed to seed enrollment")

	ticketType := repository.TicketTypeModel{
		Name:          "Full Pass",
		PriceCents:    49900,
		IsRemote:      isRemote,
		IncludesHotel: includesHotel,
	}
	require.NoError(t, db.Create(&ticketType).Error, "failed to seed ticket type")

	ticket := repository.TicketModel{
		EnrollmentID: enrollment.ID,
		TicketTypeID: ticketType.ID,
		Status:       status,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(&ticket).Error, "failed to seed ticket")

	return seededUser{
		UserID:       userID,
		EnrollmentID: enrollment.ID,
		TicketID:     ticket.ID,
	}
}

// publishTestEvent publishes a CloudEvent to Kafka.
func publishTestEvent(t *testing.T, brokers []string, topic, source, eventType string, data interface{}) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	producer := kafka.NewProducer(brokers, logger)
	defer func() { _ = producer.Close() }()

	ce, err := kafka.NewCloudEvent(source, eventType, data)
	require.NoError(t, err, "failed to create cloud event")

	err = producer.PublishEvent(context.Background(), topic, ce)
	require.NoError(t, err, "failed to publish event")
}

// waitForTicketStatus polls the tickets table until the status matches.
func waitForTicketStatus(t *testing.T, db *gorm.DB, ticketID int64, expectedStatus string, timeout time.Duration) repository.TicketModel {
	t.Helper()
	var result repository.TicketModel
	require.Eventually(t, func() bool {
		var model repository.TicketModel
		err := db.Where("id = ?", ticketID).First(&model).Error
		if err != nil {
			return false
		}
		if model.Status == expectedStatus {
			result = model
			return true
		}
		return false
	}, timeout, 200*time.Millisecond, "ticket did not transition to %s", expectedStatus)
	return result
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
