package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	amqp "github.com/rabbitmq/amqp091-go"

	"pulseguard-backend/internal/bootstrap"
	"pulseguard-backend/internal/shared/config"
	"pulseguard-backend/internal/shared/metrics"
	"pulseguard-backend/internal/shared/telemetry"
	"pulseguard-backend/internal/workerproc"
)

const (
	defaultSQSRegion          = "us-east-1"
	defaultVisibilitySeconds  = 300
	defaultWorkerConcurrency  = 4
	defaultShutdownTimeoutSec = 30
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	concurrency := max(1, envInt("PG_WORKER_CONCURRENCY", defaultWorkerConcurrency))
	shutdownTimeout := time.Duration(envInt("PG_SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSec)) * time.Second

	app, err := bootstrap.Build(cfg)
	if err != nil {
		fatal("worker.bootstrap_failed", err)
	}
	defer app.Close()

	var wg sync.WaitGroup
	switch cfg.QueueBackend {
	case "sqs":
		runSQS(ctx, cfg, app.ReportsService, concurrency, &wg)
	case "rabbitmq":
		runAMQP(ctx, app, concurrency, &wg)
	default:
		fatal("worker.queue_missing", nil)
	}

	telemetry.Info("worker.shutdown", map[string]any{"timeout": shutdownTimeout.String()})
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		telemetry.Error("worker.shutdown_timeout", nil)
	}
}

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

func runSQS(ctx context.Context, cfg config.Config, proc workerproc.Processor, concurrency int, wg *sync.WaitGroup) {
	queueURL := strings.TrimSpace(cfg.SQSQueueURL)
	if queueURL == "" {
		fatal("worker.queue_missing", nil)
	}
	region := cfg.AWSRegion
	if region == "" {
		region = defaultSQSRegion
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		fatal("worker.aws_config_failed", err)
	}
	var client sqsAPI = sqs.NewFromConfig(awsCfg)
	visibility := envInt("PG_SQS_VISIBILITY_TIMEOUT_SECONDS", defaultVisibilitySeconds)
	sem := make(chan struct{}, concurrency)

	telemetry.Info("worker.started", map[string]any{
		"backend":     "sqs",
		"queue":       queueURL,
		"concurrency": concurrency,
		"visibility":  visibility,
	})

	for ctx.Err() == nil {
		resp, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			VisibilityTimeout:   int32(visibility),
			AttributeNames:      []sqstypes.QueueAttributeName{sqstypes.QueueAttributeName("ApproximateReceiveCount")},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			telemetry.Error("worker.receive_failed", map[string]any{"error": err.Error()})
			continue
		}

		for _, msg := range resp.Messages {
			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			wg.Add(1)
			go func(m sqstypes.Message) {
				defer wg.Done()
				defer func() { <-sem }()
				handleSQSMessage(ctx, client, queueURL, proc, m)
			}(msg)
		}
	}
}

func handleSQSMessage(ctx context.Context, client sqsAPI, queueURL string, proc workerproc.Processor, msg sqstypes.Message) {
	fields := map[string]any{
		"sqs_message_id": aws.ToString(msg.MessageId),
		"receive_count":  receiveCount(msg),
	}
	if !processBody(ctx, proc, aws.ToString(msg.Body), fields) {
		return
	}

	receipt := aws.ToString(msg.ReceiptHandle)
	if receipt == "" {
		fields["error"] = "missing receipt handle"
		telemetry.Error("worker.report.delete_failed", fields)
		return
	}
	if _, err := client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receipt),
	}); err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.report.delete_failed", fields)
	}
}

func runAMQP(ctx context.Context, app *bootstrap.App, concurrency int, wg *sync.WaitGroup) {
	deliveries, err := app.AMQP.Consume(concurrency)
	if err != nil {
		fatal("worker.consume_failed", err)
	}
	telemetry.Info("worker.started", map[string]any{
		"backend":     "rabbitmq",
		"queue":       app.Config.RabbitMQQueue,
		"concurrency": concurrency,
	})

	sem := make(chan struct{}, concurrency)
	for {
		var d amqp.Delivery
		var ok bool
		select {
		case <-ctx.Done():
			return
		case d, ok = <-deliveries:
			if !ok {
				telemetry.Error("worker.consume_closed", nil)
				return
			}
		}
		select {
		case <-ctx.Done():
			_ = d.Nack(false, true)
			return
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(d amqp.Delivery) {
			defer wg.Done()
			defer func() { <-sem }()
			handleDelivery(ctx, app.ReportsService, d)
		}(d)
	}
}

// acknowledger is the part of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(ctx context.Context, proc workerproc.Processor, d amqp.Delivery) {
	settle(ctx, proc, &d, string(d.Body), d.Redelivered, map[string]any{
		"amqp_delivery_tag": d.DeliveryTag,
		"redelivered":       d.Redelivered,
	})
}

// settle acks finished or unrecoverable jobs. A failed job is requeued once;
// if its redelivery fails too it is rejected to the dead-letter queue.
func settle(ctx context.Context, proc workerproc.Processor, ack acknowledger, body string, redelivered bool, fields map[string]any) {
	var err error
	switch {
	case processBody(ctx, proc, body, fields):
		err = ack.Ack(false)
	case redelivered:
		metrics.IncReportJobsDeadLettered()
		telemetry.Error("worker.report.dead_lettered", fields)
		err = ack.Nack(false, false)
	default:
		err = ack.Nack(false, true)
	}
	if err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.report.settle_failed", fields)
	}
}

// processBody runs one job and reports whether the message should be
// removed from the queue: on success or when it can never succeed.
func processBody(ctx context.Context, proc workerproc.Processor, body string, fields map[string]any) bool {
	metrics.IncReportJobsReceived()

	decoded, meta, err := workerproc.ParseMessage(body)
	if err != nil {
		fields["body_len"] = meta.BodyLen
		if meta.BodySHA != "" {
			fields["body_sha256"] = meta.BodySHA
		}
		fields["error"] = err.Error()
		telemetry.Error("worker.report.unrecoverable", fields)
		metrics.IncReportJobsDeletedUnrecoverable()
		return true
	}

	fields["report_id"] = decoded.ReportID
	if decoded.RequestID != "" {
		fields["request_id"] = decoded.RequestID
	}
	telemetry.Info("worker.report.received", fields)

	if err := workerproc.HandleMessage(workerproc.WithParsedMessage(ctx, decoded), proc, body); err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.report.failed", fields)
		return false
	}
	telemetry.Info("worker.report.completed", fields)
	return true
}

func receiveCount(msg sqstypes.Message) int {
	raw := msg.Attributes["ApproximateReceiveCount"]
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}

func fatal(msg string, err error) {
	fields := map[string]any{}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error(msg, fields)
	os.Exit(1)
}
