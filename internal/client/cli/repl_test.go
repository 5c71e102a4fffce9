package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Reload(ctx context.Context) error {
	f.calls = append(f.calls, "reload")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.calls = append(f.calls, "search")
	f.arg = term
	return nil
}
func (f *fakeExec) Section(ctx context.Context, name string) error {
	f.calls = append(f.calls, "section")
	f.arg = name
	return nil
}
func (f *fakeExec) Org(ctx context.Context, name string) error {
	f.calls = append(f.calls, "org")
	f.arg = name
	return nil
}
func (f *fakeExec) Fav(ctx context.Context, id string) error {
	f.calls = append(f.calls, "fav")
	f.arg = id
	return nil
}
func (f *fakeExec) Favs(ctx context.Context) error { f.calls = append(f.calls, "favs"); return nil }
func (f *fakeExec) View(ctx context.Context, id string) error {
	f.calls = append(f.calls, "view")
	f.arg = id
	return nil
}
func (f *fakeExec) Publish(ctx context.Context) error {
	f.calls = append(f.calls, "publish")
	return nil
}
func (f *fakeExec) Draft(ctx context.Context) error {
	f.calls = append(f.calls, "draft")
	return nil
}
func (f *fakeExec) Mine(ctx context.Context) error { f.calls = append(f.calls, "mine"); return nil }
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Metrics(ctx context.Context) error {
	f.calls = append(f.calls, "metrics")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"search saúde",
		"fav 3",
		"view 3",
		"publish",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "search", "fav", "view", "publish"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_SearchJoinsArguments(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("search concurso público\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if exec.arg != "concurso público" {
		t.Fatalf("want joined term, got %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("fav\nview\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
