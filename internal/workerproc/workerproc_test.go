package workerproc

import (
	"context"
	"errors"
	"testing"

	"pulseguard-backend/internal/queue"
)

const (
	reportA = "6f1c2a8e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"
	reportB = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"
)

type recordingProcessor struct {
	got []queue.Message
	err error
}

func (p *recordingProcessor) Process(_ context.Context, msg queue.Message) error {
	p.got = append(p.got, msg)
	return p.err
}

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		unrecoverable bool
		wantErr       bool
	}{
		{name: "valid", body: `{"reportId":"`+reportA+`","userId":"u1","version":1}`},
		{name: "empty", body: "  ", wantErr: true, unrecoverable: true},
		{name: "bad json", body: `{"reportId":`, wantErr: true, unrecoverable: true},
		{name: "missing id", body: `{"userId":"u1","requestId":"req"}`, wantErr: true, unrecoverable: true},
		{name: "malformed id", body: `{"reportId":"not-a-uuid","userId":"u1"}`, wantErr: true, unrecoverable: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			msg, meta, err := ParseMessage(tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMessage err = %v, wantErr %v", err, tt.wantErr)
			}
			if IsUnrecoverable(err) != tt.unrecoverable {
				t.Fatalf("IsUnrecoverable(%v) = %v", err, !tt.unrecoverable)
			}
			if meta.BodyLen != len(tt.body) || len(meta.BodySHA) != 64 {
				t.Fatalf("unexpected meta %+v", meta)
			}
			if !tt.wantErr && msg.ReportID != reportA {
				t.Fatalf("unexpected message %+v", msg)
			}
		})
	}
}

func TestMissingReportIDKeepsRequestID(t *testing.T) {
	_, _, err := ParseMessage(`{"requestId":"req-7"}`)
	var missing ErrMissingReportID
	if !errors.As(err, &missing) || missing.RequestID != "req-7" {
		t.Fatalf("expected ErrMissingReportID with request id, got %v", err)
	}
}

func TestHandleMessage(t *testing.T) {
	proc := &recordingProcessor{}
	if err := HandleMessage(context.Background(), proc, `{"reportId":"`+reportA+`","userId":"u1"}`); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(proc.got) != 1 || proc.got[0].UserID != "u1" {
		t.Fatalf("unexpected processed messages %+v", proc.got)
	}

	ctx := WithParsedMessage(context.Background(), queue.Message{ReportID: reportB})
	if err := HandleMessage(ctx, proc, "ignored"); err != nil {
		t.Fatalf("HandleMessage with parsed message: %v", err)
	}
	if proc.got[1].ReportID != reportB {
		t.Fatalf("expected parsed message to be reused, got %+v", proc.got[1])
	}
}

func TestHandleMessageProcessError(t *testing.T) {
	boom := errors.New("store down")
	err := HandleMessage(context.Background(), &recordingProcessor{err: boom}, `{"reportId":"`+reportA+`"}`)
	var perr ErrProcess
	if !errors.As(err, &perr) || perr.ReportID != reportA || !errors.Is(err, boom) {
		t.Fatalf("expected ErrProcess wrapping cause, got %v", err)
	}
	if IsUnrecoverable(err) {
		t.Fatalf("processing failures must be retried")
	}

	if err := HandleMessage(context.Background(), nil, `{"reportId":"`+reportA+`"}`); err == nil {
		t.Fatalf("expected error for nil processor")
	}
}

func TestMalformedReportIDIsDropped(t *testing.T) {
	proc := &recordingProcessor{}
	err := HandleMessage(context.Background(), proc, `{"reportId":"not-a-uuid","requestId":"req-9"}`)
	var invalid ErrInvalidReportID
	if !errors.As(err, &invalid) || invalid.ReportID != "not-a-uuid" || invalid.RequestID != "req-9" {
		t.Fatalf("expected ErrInvalidReportID, got %v", err)
	}
	if !IsUnrecoverable(err) {
		t.Fatalf("malformed report ids must not be retried")
	}

	ctx := WithParsedMessage(context.Background(), queue.Message{ReportID: "r2"})
	if err := HandleMessage(ctx, proc, "ignored"); !IsUnrecoverable(err) {
		t.Fatalf("expected unrecoverable error for parsed message, got %v", err)
	}
	if len(proc.got) != 0 {
		t.Fatalf("processor must not see malformed ids, got %+v", proc.got)
	}
}
