package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate("0 7 * * *"); err != nil {
		t.Fatalf("valid expression rejected: %v", err)
	}
	if err := Validate("every morning"); err == nil {
		t.Fatalf("invalid expression accepted")
	}
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("not cron", nil, nil)
	if err := s.Start(context.Background(), func(time.Time) {}); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	s := NewCronScheduler("@every 1s", loc, nil)
	ran := make(chan time.Time, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx, func(tick time.Time) {
		select {
		case ran <- tick:
		default:
		}
	}); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	// second start is a no-op
	if err := s.Start(ctx, func(time.Time) {}); err != nil {
		t.Fatalf("second Start returned error: %v", err)
	}

	select {
	case tick := <-ran:
		if tick.Location() != loc {
			t.Fatalf("job time not in scheduler location: %v", tick.Location())
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("job did not run")
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
}
