package transport

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Config{Kind: "carrier-pigeon", Timeout: time.Second})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v, want ErrUnknownKind", err)
	}
}

func TestBuild_Noop(t *testing.T) {
	ch, err := Build(Config{Kind: KindNoop, Timeout: time.Second})
	if err != nil {
		t.Fatalf("Build() err=%v", err)
	}
	if st, err := ch.Send(context.Background(), 10); st != Connected || err != nil {
		t.Fatalf("Send = %v, %v", st, err)
	}
}

func TestBuild_SerialMissingPort(t *testing.T) {
	ch, err := Build(Config{Kind: KindSerial, Endpoint: "/dev/padlink-does-not-exist", BaudRate: 9600, Timeout: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("Build() err=%v", err)
	}
	if st, err := ch.Send(context.Background(), 1); st != Disconnected || err == nil {
		t.Fatalf("Send = %v, %v; want Disconnected with error", st, err)
	}
}
