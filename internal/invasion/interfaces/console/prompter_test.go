package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("(1,2)\r\n quit\nlast"), &out)
	ctx := context.Background()

	for _, want := range []string{"(1,2)", " quit", "last"} {
		got, err := p.Prompt(ctx, "> ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got != want {
			t.Fatalf("line expected=%q got=%q", want, got)
		}
	}
	if _, err := p.Prompt(ctx, "> "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if out.String() != strings.Repeat("> ", 4) {
		t.Fatalf("unexpected prompts: %q", out.String())
	}
}

func TestPrompter_Prompt_ctx已取消(t *testing.T) {
	p := NewPrompter(strings.NewReader("1,1\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Prompt(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
