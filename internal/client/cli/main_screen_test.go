package cli

import (
	"context"
	"testing"
)

type fakeMain struct {
	demo bool

	calls []string
	token string
}

func (f *fakeMain) isDemo() bool { return f.demo }
func (f *fakeMain) Whoami(ctx context.Context) {
	f.calls = append(f.calls, "whoami")
}
func (f *fakeMain) Statuses(ctx context.Context) {
	f.calls = append(f.calls, "statuses")
}
func (f *fakeMain) FetchSettings(ctx context.Context) {
	f.calls = append(f.calls, "settings")
}
func (f *fakeMain) PushSettings(ctx context.Context) {
	f.calls = append(f.calls, "settings-push")
}
func (f *fakeMain) RegisterDevice(ctx context.Context, token string) {
	f.calls = append(f.calls, "device")
	f.token = token
}
func (f *fakeMain) Comment(ctx context.Context) {
	f.calls = append(f.calls, "comment")
}
func (f *fakeMain) ChangePin(ctx context.Context) {
	f.calls = append(f.calls, "pin")
}
func (f *fakeMain) DisablePin(ctx context.Context) {
	f.calls = append(f.calls, "pinoff")
}
func (f *fakeMain) Logout(ctx context.Context) {
	f.calls = append(f.calls, "logout")
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestDispatchMain_Commands(t *testing.T) {
	muteOutput(t)

	exec := &fakeMain{}
	ctx := context.Background()

	for _, line := range []string{
		"help",
		"whoami",
		"statuses",
		"settings",
		"settings-push",
		"device tok123",
		"comment",
		"pin",
		"pinoff",
		"logout",
	} {
		if quit := dispatchMain(ctx, exec, line); quit {
			t.Fatalf("unexpected quit on %q", line)
		}
	}

	want := []string{"whoami", "statuses", "settings", "settings-push", "device", "comment", "pin", "pinoff", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls: got %v, want %v", exec.calls, want)
		}
	}
	if exec.token != "tok123" {
		t.Fatalf("token: got %q", exec.token)
	}
}

func TestDispatchMain_Quit(t *testing.T) {
	muteOutput(t)

	exec := &fakeMain{}
	if !dispatchMain(context.Background(), exec, "exit") {
		t.Fatal("expected quit")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

// В демо-режиме команды записи скрыты, но pin и logout остаются доступны.
func TestDispatchMain_DemoHidesWriteCommands(t *testing.T) {
	muteOutput(t)

	exec := &fakeMain{demo: true}
	ctx := context.Background()

	for _, line := range []string{"settings", "settings-push", "device tok", "comment"} {
		dispatchMain(ctx, exec, line)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("demo mode should not dispatch write commands, got %v", exec.calls)
	}

	dispatchMain(ctx, exec, "pin")
	dispatchMain(ctx, exec, "logout")
	if len(exec.calls) != 2 || exec.calls[0] != "pin" || exec.calls[1] != "logout" {
		t.Fatalf("calls: %v", exec.calls)
	}
}

func TestDispatchMain_DeviceUsage(t *testing.T) {
	muteOutput(t)

	exec := &fakeMain{}
	dispatchMain(context.Background(), exec, "device")
	if len(exec.calls) != 0 {
		t.Fatalf("device without args should not dispatch, got %v", exec.calls)
	}
}

func TestDispatchMain_EmptyAndUnknown(t *testing.T) {
	muteOutput(t)

	exec := &fakeMain{}
	dispatchMain(context.Background(), exec, "")
	dispatchMain(context.Background(), exec, "foobar")
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
