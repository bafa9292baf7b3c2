package activity

import (
	"fmt"
	"testing"
	"time"
)

func TestLog_Append_bounded(t *testing.T) {
	l := NewLog(10)

	for i := 1; i <= 15; i++ {
		l.Append(fmt.Sprintf("action %d", i), "admin", KindCreated)
	}

	entries := l.List()
	if len(entries) != 10 {
		t.Fatalf("List() len = %d; want 10", len(entries))
	}
	if entries[0].Action != "action 15" {
		t.Errorf("List()[0].Action = %q; want %q", entries[0].Action, "action 15")
	}
	if entries[9].Action != "action 6" {
		t.Errorf("List()[9].Action = %q; want %q", entries[9].Action, "action 6")
	}
}

func TestLog_Append_idsStrictlyIncrease(t *testing.T) {
	l := NewLog(10)
	// freeze the clock so timestamp-derived ids would collide without the ratchet
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	e1 := l.Append("first", "admin", KindCreated)
	e2 := l.Append("second", "admin", KindCreated)
	if e2.ID <= e1.ID {
		t.Errorf("second id = %d; want > %d", e2.ID, e1.ID)
	}
}

func TestLog_List_isCopy(t *testing.T) {
	l := NewLog(10)
	l.Append("only", "admin", KindCreated)

	entries := l.List()
	entries[0].Action = "mutated"
	if got := l.List()[0].Action; got != "only" {
		t.Errorf("List()[0].Action = %q; want %q", got, "only")
	}
}

func Test_timeAgo(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "just now", d: 30 * time.Second, want: "just now"},
		{name: "one minute", d: 90 * time.Second, want: "1 minute ago"},
		{name: "minutes", d: 45 * time.Minute, want: "45 minutes ago"},
		{name: "one hour", d: time.Hour + time.Minute, want: "1 hour ago"},
		{name: "hours", d: 5 * time.Hour, want: "5 hours ago"},
		{name: "one day", d: 25 * time.Hour, want: "1 day ago"},
		{name: "days", d: 72 * time.Hour, want: "3 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeAgo(tt.d); got != tt.want {
				t.Errorf("timeAgo(%v) = %q; want %q", tt.d, got, tt.want)
			}
		})
	}
}
