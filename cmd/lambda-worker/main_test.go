package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"pulseguard-backend/internal/queue"
)

type stubProcessor struct {
	fail map[string]bool
}

func (s stubProcessor) Process(_ context.Context, msg queue.Message) error {
	if s.fail[msg.ReportID] {
		return errors.New("store down")
	}
	return nil
}

const (
	okReport    = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	retryReport = "2d3e4f5a-6b7c-4d8e-9f0a-1b2c3d4e5f6a"
)

func TestProcessBatchReportsRetryableFailuresOnly(t *testing.T) {
	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "ok", Body: `{"reportId":"` + okReport + `"}`},
		{MessageId: "retry", Body: `{"reportId":"` + retryReport + `"}`},
		{MessageId: "garbage", Body: `not json`},
		{MessageId: "malformed", Body: `{"reportId":"r3"}`},
	}}

	resp := processBatch(context.Background(), stubProcessor{fail: map[string]bool{retryReport: true, "r3": true}}, event)
	if len(resp.BatchItemFailures) != 1 || resp.BatchItemFailures[0].ItemIdentifier != "retry" {
		t.Fatalf("unexpected failures %+v", resp.BatchItemFailures)
	}
}
